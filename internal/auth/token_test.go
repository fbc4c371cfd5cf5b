package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pantheon-service/internal/domain"
)

const testSecret = "test-signing-secret"

func signClaims(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token, expiresAt, err := tm.Issue(42, domain.RoleModerator)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, domain.RoleModerator, claims.Role)
}

func TestTokenDefaultTTL(t *testing.T) {
	tm := NewTokenManager(testSecret, 0)

	_, expiresAt, err := tm.Issue(1, domain.RoleUser)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	expired := signClaims(t, testSecret, &Claims{
		UserID: 7,
		Role:   domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := tm.Parse(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	forged := signClaims(t, "another-secret", &Claims{
		UserID: 7,
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := tm.Parse(forged)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

// A forged token that is also expired must fail on the signature, not the
// expiry, so an attacker cannot probe claim validity.
func TestTokenSignatureCheckedBeforeExpiry(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	forgedExpired := signClaims(t, "another-secret", &Claims{
		UserID: 7,
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	_, err := tm.Parse(forgedExpired)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestTokenMalformed(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	for _, tokenStr := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := tm.Parse(tokenStr)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", tokenStr)
	}
}

func TestTokenRejectsNoneAlgorithm(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: 7,
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Parse(unsigned)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}
