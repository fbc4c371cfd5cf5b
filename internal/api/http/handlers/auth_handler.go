package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pantheon-service/internal/api/dto"
	"github.com/spec-kit/pantheon-service/internal/auth"
	"github.com/spec-kit/pantheon-service/internal/domain"
	"github.com/spec-kit/pantheon-service/internal/service"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

// AuthHandler exposes registration, login and logout.
type AuthHandler struct {
	auth       *service.AuthService
	production bool
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, production bool) *AuthHandler {
	return &AuthHandler{auth: authService, production: production}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("Données invalides", dto.ValidationDetails(err))
	}

	user, err := h.auth.Register(c.Context(), service.RegisterInput{
		GodID:    req.GodID,
		Pseudo:   req.Pseudo,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Utilisateur créé avec succès",
		"user":    dto.NewUserResponse(user, domain.PresenceOffline),
	})
}

// Login handles POST /auth/login. The token is returned in the body and set
// as the jwt cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("Données invalides", dto.ValidationDetails(err))
	}

	user, token, expiresAt, err := h.auth.Login(c.Context(), req.Pseudo, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(auth.NewSessionCookie(token, expiresAt, h.production))
	return c.JSON(dto.LoginResponse{
		Message:   "Connexion réussie",
		Token:     token,
		User:      user.ID,
		ExpiresAt: expiresAt,
	})
}

// Logout handles POST /auth/logout. Requires a valid session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}

	h.auth.Logout(c.Context(), principal.UserID)
	c.Cookie(auth.ExpiredSessionCookie(h.production))
	return c.JSON(fiber.Map{"message": "Déconnexion réussie"})
}
