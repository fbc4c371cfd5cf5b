package auth

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFromCookieHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "single cookie", header: "jwt=abc123", want: "abc123"},
		{name: "among other cookies", header: "theme=dark; jwt=abc123; lang=fr", want: "abc123"},
		{name: "value containing equals", header: "jwt=abc=123=x", want: "abc=123=x"},
		{name: "surrounding whitespace", header: "  jwt=abc123  ; theme=dark", want: "abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TokenFromCookieHeader(tt.header)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenFromCookieHeaderMissing(t *testing.T) {
	_, err := TokenFromCookieHeader("")
	assert.ErrorIs(t, err, ErrCookieMissing)

	_, err = TokenFromCookieHeader("theme=dark; lang=fr")
	assert.ErrorIs(t, err, ErrTokenMissing)

	// An empty value counts as missing, and a cookie named jwt_extra must
	// not match.
	_, err = TokenFromCookieHeader("jwt=")
	assert.ErrorIs(t, err, ErrTokenMissing)

	_, err = TokenFromCookieHeader("jwt_extra=abc")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestNewSessionCookieDevelopment(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	cookie := NewSessionCookie("tok", expires, false)

	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HTTPOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, fiber.CookieSameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, expires, cookie.Expires)
}

func TestNewSessionCookieProduction(t *testing.T) {
	cookie := NewSessionCookie("tok", time.Now().Add(time.Hour), true)

	assert.True(t, cookie.HTTPOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, fiber.CookieSameSiteNoneMode, cookie.SameSite)
}

func TestExpiredSessionCookie(t *testing.T) {
	cookie := ExpiredSessionCookie(false)

	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, time.Unix(0, 0), cookie.Expires)
}
