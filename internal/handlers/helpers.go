package handlers

import (
	"errors"

	"bollybuzz-backend/internal/services"
	"bollybuzz-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// respondError maps the service error taxonomy to HTTP statuses in one
// place. Internal detail never reaches the client; the caller logs it.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case services.IsValidation(err):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please sign in to continue")
	case errors.Is(err, services.ErrEmailTaken):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidResetToken):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Not found")
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, fallback)
	}
}
