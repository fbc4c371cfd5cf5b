package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pantheon-service/internal/api/dto"
	"github.com/spec-kit/pantheon-service/internal/auth"
	"github.com/spec-kit/pantheon-service/internal/domain"
	"github.com/spec-kit/pantheon-service/internal/repository"
	"github.com/spec-kit/pantheon-service/internal/service"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

// UsersHandler manages account endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Me GET /users/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	user, err := h.users.GetByID(c.Context(), principal.UserID)
	if err != nil {
		return err
	}
	presence := h.users.PresenceOf(c.Context(), user.ID)
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user, presence)})
}

// Get GET /users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.users.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	presence := h.users.PresenceOf(c.Context(), user.ID)
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user, presence)})
}

// List GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.userResponses(c, users)})
}

// Search GET /users/search.
func (h *UsersHandler) Search(c *fiber.Ctx) error {
	filter := repository.UserSearchFilter{}
	if pseudo := c.Query("pseudo"); pseudo != "" {
		filter.Pseudo = &pseudo
	}
	if email := c.Query("email"); email != "" {
		filter.Email = &email
	}
	if raw := c.Query("created_after"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return apperrors.NewValidationError("Date invalide, format attendu RFC3339", nil)
		}
		filter.CreatedAfter = &t
	}
	users, err := h.users.Search(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.userResponses(c, users)})
}

// UpdateMe PATCH /users/me.
func (h *UsersHandler) UpdateMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("Données invalides", dto.ValidationDetails(err))
	}
	user, err := h.users.UpdateProfile(c.Context(), principal.UserID, service.UserUpdateInput{
		Pseudo: req.Pseudo,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if err != nil {
		return err
	}
	presence := h.users.PresenceOf(c.Context(), user.ID)
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user, presence)})
}

// DeleteMe DELETE /users/me.
func (h *UsersHandler) DeleteMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	if err := h.users.Delete(c.Context(), principal.UserID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Utilisateur supprimé avec succès"})
}

// Delete DELETE /users/:id. Admin only.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.users.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Utilisateur supprimé avec succès"})
}

// ChangeRole PATCH /users/:id/role. Admin only. The new role takes effect on
// the user's next login.
func (h *UsersHandler) ChangeRole(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	user, err := h.users.ChangeRole(c.Context(), id, req.Role)
	if err != nil {
		return err
	}
	presence := h.users.PresenceOf(c.Context(), user.ID)
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user, presence)})
}

// ToggleStatus PATCH /users/:id/status. Admin only. Bans an active user or
// lifts an existing ban.
func (h *UsersHandler) ToggleStatus(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.BanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	user, err := h.users.ToggleStatus(c.Context(), id, req.BannedUntil)
	if err != nil {
		return err
	}
	presence := h.users.PresenceOf(c.Context(), user.ID)
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user, presence)})
}

func (h *UsersHandler) userResponses(c *fiber.Ctx, users []domain.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		presence := h.users.PresenceOf(c.Context(), users[i].ID)
		out = append(out, dto.NewUserResponse(&users[i], presence))
	}
	return out
}
