package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vikramKumar-01/Hotel-mangement/internal/helpers"
	"github.com/vikramKumar-01/Hotel-mangement/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	userRepo models.UserRepo
}

func NewUserService(userRepo models.UserRepo) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// ProfileUpdate carries the self-service profile fields. Empty fields are
// left untouched; email and role are not updatable through this path.
type ProfileUpdate struct {
	Name         string
	Password     string
	Phone        string
	Address      string
	ProfileImage string
}

func (us *UserService) Signup(ctx context.Context, in SignupInput) error {
	if err := models.Validate.Var(in.Email, "required,email"); err != nil {
		return fmt.Errorf("%w: invalid email", models.ErrValidation)
	}
	if err := models.Validate.Var(in.Password, "required,min=6"); err != nil {
		return fmt.Errorf("%w: password must be at least 6 characters", models.ErrValidation)
	}
	if helpers.StringTrim(in.Name) == "" {
		return fmt.Errorf("%w: name is required", models.ErrValidation)
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return fmt.Errorf("%w: unknown role %q", models.ErrValidation, in.Role)
	}

	// Explicit duplicate check for a clean conflict message. The unique
	// index still catches the insert race.
	if _, err := us.userRepo.GetUserByEmail(ctx, in.Email); err == nil {
		return models.ErrConflict
	} else if !errors.Is(err, models.ErrNotFound) {
		return err
	}

	hashed, err := helpers.HashPassword(in.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	_, err = us.userRepo.CreateUser(ctx, &models.User{
		Name:     helpers.StringTrim(in.Name),
		Email:    in.Email,
		Password: hashed,
		Role:     role,
	})
	return err
}

// Login verifies credentials. Unknown email and wrong password both come
// back as ErrInvalidCredentials so callers cannot probe for accounts.
func (us *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	if password == "" {
		return nil, models.ErrInvalidCredentials
	}

	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !helpers.CheckPassword(password, user.Password) {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

// AdminLogin verifies credentials first, then the role, so a failed
// password never reveals whether the account is an admin.
func (us *UserService) AdminLogin(ctx context.Context, email, password string) (*models.User, error) {
	user, err := us.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins can login here", models.ErrForbidden)
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", models.ErrNotFound)
	}
	return us.userRepo.GetUserByID(ctx, oid)
}

func (us *UserService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", models.ErrNotFound)
	}

	set := map[string]interface{}{}
	if name := helpers.StringTrim(upd.Name); name != "" {
		set["name"] = name
	}
	if upd.Password != "" {
		if err := models.Validate.Var(upd.Password, "min=6"); err != nil {
			return nil, fmt.Errorf("%w: password must be at least 6 characters", models.ErrValidation)
		}
		hashed, err := helpers.HashPassword(upd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %v", err)
		}
		set["password"] = hashed
	}
	if upd.Phone != "" {
		set["phone"] = upd.Phone
	}
	if upd.Address != "" {
		set["address"] = upd.Address
	}
	if upd.ProfileImage != "" {
		set["profileImage"] = upd.ProfileImage
	}

	return us.userRepo.UpdateUser(ctx, oid, set)
}
