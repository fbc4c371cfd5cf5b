package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "jwt"

var (
	// ErrCookieMissing means the request carried no Cookie header at all.
	ErrCookieMissing = errors.New("cookie header missing")
	// ErrTokenMissing means the header had no entry named jwt.
	ErrTokenMissing = errors.New("session token missing from cookie")
)

// TokenFromCookieHeader locates the jwt cookie inside a raw Cookie header.
// The header may hold several ";"-separated pairs and cookie values may
// themselves contain "=", so each pair is split on the first "=" only and
// matched by exact name.
func TokenFromCookieHeader(header string) (string, error) {
	if header == "" {
		return "", ErrCookieMissing
	}
	for _, part := range strings.Split(header, ";") {
		pair := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(pair) != 2 {
			continue
		}
		if pair[0] == SessionCookieName && pair[1] != "" {
			return pair[1], nil
		}
	}
	return "", ErrTokenMissing
}

// NewSessionCookie builds the Set-Cookie payload for an issued token.
// HttpOnly is always set; production additionally requires Secure and
// SameSite=None for cross-site frontends.
func NewSessionCookie(token string, expiresAt time.Time, production bool) *fiber.Cookie {
	cookie := &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if production {
		cookie.Secure = true
		cookie.SameSite = fiber.CookieSameSiteNoneMode
	}
	return cookie
}

// ExpiredSessionCookie returns a cookie that instructs the client to discard
// its session token. The server keeps no token state to revoke.
func ExpiredSessionCookie(production bool) *fiber.Cookie {
	cookie := NewSessionCookie("", time.Unix(0, 0), production)
	cookie.Expires = time.Unix(0, 0)
	return cookie
}
