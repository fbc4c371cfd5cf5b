package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pantheon-service/internal/domain"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

// RequireRole ensures the principal's role is in the allowed set. The role is
// the one captured in the token at issuance; a promotion or demotion takes
// effect at the next login. Running without a principal fails closed as
// unauthenticated.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("Access denied. Cookie missing.")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("Accès interdit, vous devez être admin pour accéder à cette ressource")
		}
		return c.Next()
	}
}

// RequireAdmin restricts a route to administrators.
func RequireAdmin() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}
