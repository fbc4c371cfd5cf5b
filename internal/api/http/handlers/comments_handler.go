package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pantheon-service/internal/api/dto"
	"github.com/spec-kit/pantheon-service/internal/auth"
	"github.com/spec-kit/pantheon-service/internal/service"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

// CommentsHandler manages comment endpoints.
type CommentsHandler struct {
	comments *service.CommentService
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(commentService *service.CommentService) *CommentsHandler {
	return &CommentsHandler{comments: commentService}
}

// Create POST /posts/:id/comments.
func (h *CommentsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	postID, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("Données invalides", dto.ValidationDetails(err))
	}
	comment, err := h.comments.Create(c.Context(), principal.UserID, postID, req.Comment)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}

// ListByPost GET /posts/:id/comments.
func (h *CommentsHandler) ListByPost(c *fiber.Ctx) error {
	postID, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	comments, err := h.comments.ListByPost(c.Context(), postID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCommentResponses(comments)})
}

// ListByUser GET /users/:id/comments.
func (h *CommentsHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	comments, err := h.comments.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCommentResponses(comments)})
}

// Update PUT /comments/:id. Author only.
func (h *CommentsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("Données invalides", dto.ValidationDetails(err))
	}
	comment, err := h.comments.Update(c.Context(), principal.UserID, id, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}

// Delete DELETE /comments/:id. Author only.
func (h *CommentsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.comments.Delete(c.Context(), principal.UserID, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Commentaire supprimé avec succès"})
}
