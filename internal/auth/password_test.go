package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!pass", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!pass", hash)

	assert.True(t, VerifyPassword(hash, "s3cret!pass"))
	assert.False(t, VerifyPassword(hash, "wrong-pass"))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("s3cret!pass", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("s3cret!pass", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword(first, "s3cret!pass"))
	assert.True(t, VerifyPassword(second, "s3cret!pass"))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "whatever"))
	assert.False(t, VerifyPassword("", "whatever"))
}
