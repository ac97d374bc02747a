package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// =============================================================================
// Hashing Tests
// =============================================================================

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPasswordWithCost("password123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "password123", hash)
	assert.True(t, IsHashed(hash))
	assert.True(t, PasswordMatches(hash, "password123"))
	assert.False(t, PasswordMatches(hash, "password124"))
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPasswordWithCost("samepassword", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPasswordWithCost("samepassword", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "each hash carries its own salt")
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestPasswordMatches_MalformedHash(t *testing.T) {
	assert.False(t, PasswordMatches("not-a-hash", "not-a-hash"))
}

func TestIsHashed(t *testing.T) {
	assert.False(t, IsHashed("plaintext"))
	assert.False(t, IsHashed(""))
}
