package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

// parseParamID reads a numeric route parameter.
func parseParamID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("Identifiant invalide", nil)
	}
	return id, nil
}
