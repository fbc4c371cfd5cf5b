package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pantheon-service/internal/api/dto"
	"github.com/spec-kit/pantheon-service/internal/auth"
	"github.com/spec-kit/pantheon-service/internal/service"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

// PostsHandler manages post endpoints.
type PostsHandler struct {
	posts *service.PostService
}

// NewPostsHandler constructs handler.
func NewPostsHandler(postService *service.PostService) *PostsHandler {
	return &PostsHandler{posts: postService}
}

// Create POST /posts.
func (h *PostsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("Données invalides", dto.ValidationDetails(err))
	}
	post, err := h.posts.Create(c.Context(), principal.UserID, req.Titre, req.Post)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewPostResponse(post)})
}

// List GET /posts.
func (h *PostsHandler) List(c *fiber.Ctx) error {
	posts, err := h.posts.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostResponses(posts)})
}

// Get GET /posts/:id.
func (h *PostsHandler) Get(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	post, err := h.posts.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostResponse(post)})
}

// ListByUser GET /users/:id/posts. Comments ride along with each post.
func (h *PostsHandler) ListByUser(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	posts, err := h.posts.ListByUser(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostResponses(posts)})
}

// Update PUT /posts/:id. Author only.
func (h *PostsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("Données invalides", dto.ValidationDetails(err))
	}
	post, err := h.posts.Update(c.Context(), principal.UserID, id, req.Titre, req.Post)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostResponse(post)})
}

// Delete DELETE /posts/:id. Author only.
func (h *PostsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.posts.Delete(c.Context(), principal.UserID, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Post supprimé avec succès"})
}

// AdminDelete DELETE /admin/posts/:id. Removes any post regardless of author.
func (h *PostsHandler) AdminDelete(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.posts.AdminDelete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Post supprimé avec succès"})
}
