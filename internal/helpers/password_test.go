package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordIsOpaque(t *testing.T) {
	hashed, err := HashPassword("hunter2secret")
	require.NoError(t, err)

	// Stored form never equals the plaintext and only round-trips through
	// comparison.
	assert.NotEqual(t, "hunter2secret", hashed)
	assert.True(t, CheckPassword("hunter2secret", hashed))
	assert.False(t, CheckPassword("wrong-password", hashed))
}

func TestHashPasswordSaltsPerRecord(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same-password", first))
	assert.True(t, CheckPassword("same-password", second))
}
