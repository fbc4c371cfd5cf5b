package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pantheon-service/internal/domain"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the verified caller identity for one request. It is built
// from token claims only; no store lookup happens on protected routes.
type Principal struct {
	UserID int64
	Role   domain.Role
}

// Middleware validates session cookies and attaches principals.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireAuth enforces authentication for protected routes. A missing cookie
// or token rejects with 401; a token that fails verification rejects with
// 403, distinguishing expired from invalid.
func (m *Middleware) RequireAuth(c *fiber.Ctx) error {
	token, err := TokenFromCookieHeader(c.Get(fiber.HeaderCookie))
	if err != nil {
		if errors.Is(err, ErrCookieMissing) {
			return apperrors.NewUnauthorized("Access denied. Cookie missing.")
		}
		return apperrors.NewUnauthorized("Access denied. Token missing.")
	}

	claims, err := m.tokens.Parse(token)
	if err != nil {
		code := "TOKEN_INVALID"
		if errors.Is(err, ErrTokenExpired) {
			code = "TOKEN_EXPIRED"
		}
		return apperrors.NewDomainError(code, "Token invalide ou expiré", http.StatusForbidden, nil)
	}

	c.Locals(principalKey, &Principal{UserID: claims.UserID, Role: claims.Role})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
