package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pantheon-service/internal/api/dto"
	"github.com/spec-kit/pantheon-service/internal/auth"
	"github.com/spec-kit/pantheon-service/internal/service"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

// FollowsHandler manages subscription endpoints. All routes require a
// session; the follower is always the authenticated user.
type FollowsHandler struct {
	follows *service.FollowService
}

// NewFollowsHandler constructs handler.
func NewFollowsHandler(followService *service.FollowService) *FollowsHandler {
	return &FollowsHandler{follows: followService}
}

// Follow POST /follows/:id.
func (h *FollowsHandler) Follow(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	followeeID, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	follow, err := h.follows.Follow(c.Context(), principal.UserID, followeeID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Abonnement créé avec succès",
		"data": dto.FollowResponse{
			UserID:     follow.UserID,
			FolloweeID: follow.FolloweeID,
			CreatedAt:  follow.CreatedAt,
		},
	})
}

// Unfollow DELETE /follows/:id.
func (h *FollowsHandler) Unfollow(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	followeeID, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.follows.Unfollow(c.Context(), principal.UserID, followeeID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Désabonnement effectué avec succès"})
}

// Status GET /follows/:id/status.
func (h *FollowsHandler) Status(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	followeeID, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	following, err := h.follows.IsFollowing(c.Context(), principal.UserID, followeeID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"following": following}})
}

// FollowingOf GET /follows/:id/following.
func (h *FollowsHandler) FollowingOf(c *fiber.Ctx) error {
	userID, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	follows, err := h.follows.Following(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFollowResponses(follows)})
}

// FollowersOf GET /follows/:id/followers.
func (h *FollowsHandler) FollowersOf(c *fiber.Ctx) error {
	userID, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	follows, err := h.follows.Followers(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFollowResponses(follows)})
}

// Following GET /follows/following.
func (h *FollowsHandler) Following(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	follows, err := h.follows.Following(c.Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFollowResponses(follows)})
}

// Followers GET /follows/followers.
func (h *FollowsHandler) Followers(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	follows, err := h.follows.Followers(c.Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFollowResponses(follows)})
}
