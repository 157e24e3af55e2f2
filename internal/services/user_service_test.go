package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vikramKumar-01/Hotel-mangement/internal/models"
)

func TestSignupThenLogin(t *testing.T) {
	us := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	err := us.Signup(ctx, SignupInput{Name: "Asha", Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)

	user, err := us.Login(ctx, "asha@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, models.RoleUser, user.Role, "role defaults to user")
	assert.NotEqual(t, "secret123", user.Password, "stored password must be hashed")
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	us := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	require.NoError(t, us.Signup(ctx, SignupInput{Name: "Asha", Email: "asha@example.com", Password: "secret123"}))

	err := us.Signup(ctx, SignupInput{Name: "Imposter", Email: "asha@example.com", Password: "different1"})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestSignupValidation(t *testing.T) {
	us := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	assert.ErrorIs(t, us.Signup(ctx, SignupInput{Name: "A", Email: "not-an-email", Password: "secret123"}), models.ErrValidation)
	assert.ErrorIs(t, us.Signup(ctx, SignupInput{Name: "A", Email: "a@example.com", Password: "short"}), models.ErrValidation)
	assert.ErrorIs(t, us.Signup(ctx, SignupInput{Name: "  ", Email: "a@example.com", Password: "secret123"}), models.ErrValidation)
	assert.ErrorIs(t, us.Signup(ctx, SignupInput{Name: "A", Email: "a@example.com", Password: "secret123", Role: "superuser"}), models.ErrValidation)
}

func TestLoginUniformFailureMessage(t *testing.T) {
	us := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	require.NoError(t, us.Signup(ctx, SignupInput{Name: "Asha", Email: "asha@example.com", Password: "secret123"}))

	// Unknown email and wrong password are indistinguishable.
	_, errUnknown := us.Login(ctx, "nobody@example.com", "secret123")
	_, errWrongPw := us.Login(ctx, "asha@example.com", "wrong-password")

	assert.ErrorIs(t, errUnknown, models.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, models.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	us := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	require.NoError(t, us.Signup(ctx, SignupInput{Name: "Asha", Email: "asha@example.com", Password: "secret123"}))
	require.NoError(t, us.Signup(ctx, SignupInput{Name: "Boss", Email: "boss@example.com", Password: "secret123", Role: "admin"}))

	_, err := us.AdminLogin(ctx, "asha@example.com", "secret123")
	assert.ErrorIs(t, err, models.ErrForbidden)

	// Bad credentials fail before the role check leaks anything.
	_, err = us.AdminLogin(ctx, "asha@example.com", "wrong-password")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	admin, err := us.AdminLogin(ctx, "boss@example.com", "secret123")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
}

func TestUpdateProfile(t *testing.T) {
	us := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	require.NoError(t, us.Signup(ctx, SignupInput{Name: "Asha", Email: "asha@example.com", Password: "secret123"}))
	user, err := us.Login(ctx, "asha@example.com", "secret123")
	require.NoError(t, err)
	oldHash := user.Password

	updated, err := us.UpdateProfile(ctx, user.ID.Hex(), ProfileUpdate{
		Name:     "Asha K",
		Phone:    "9876543210",
		Password: "newsecret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha K", updated.Name)
	assert.Equal(t, "9876543210", updated.Phone)
	assert.Equal(t, "asha@example.com", updated.Email, "email is immutable")
	assert.Equal(t, models.RoleUser, updated.Role, "role is immutable")
	assert.NotEqual(t, oldHash, updated.Password, "password change re-hashes")

	// The old password no longer works, the new one does.
	_, err = us.Login(ctx, "asha@example.com", "secret123")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	_, err = us.Login(ctx, "asha@example.com", "newsecret1")
	assert.NoError(t, err)
}

func TestGetByIDUnknownUser(t *testing.T) {
	us := NewUserService(newFakeUserRepo())

	_, err := us.GetByID(context.Background(), "64f1b2c3d4e5f60718293a4b")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = us.GetByID(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
