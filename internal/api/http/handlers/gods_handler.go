package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pantheon-service/internal/api/dto"
	"github.com/spec-kit/pantheon-service/internal/service"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

// GodsHandler manages the god catalog. Writes are admin only.
type GodsHandler struct {
	gods *service.GodService
}

// NewGodsHandler constructs handler.
func NewGodsHandler(godService *service.GodService) *GodsHandler {
	return &GodsHandler{gods: godService}
}

// List GET /gods.
func (h *GodsHandler) List(c *fiber.Ctx) error {
	gods, err := h.gods.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewGodResponses(gods)})
}

// Create POST /gods.
func (h *GodsHandler) Create(c *fiber.Ctx) error {
	var req dto.GodRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("Données invalides", dto.ValidationDetails(err))
	}
	god, err := h.gods.Create(c.Context(), service.GodInput{
		Nom:         req.Nom,
		Description: req.Description,
		Mythologie:  req.Mythologie,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewGodResponse(god)})
}

// Update PUT /gods/:id.
func (h *GodsHandler) Update(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.GodRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	god, err := h.gods.Update(c.Context(), id, service.GodInput{
		Nom:         req.Nom,
		Description: req.Description,
		Mythologie:  req.Mythologie,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewGodResponse(god)})
}

// Delete DELETE /gods/:id.
func (h *GodsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.gods.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Dieu supprimé avec succès"})
}
