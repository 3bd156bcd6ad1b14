// Package respond maps the error taxonomy onto HTTP responses so every route
// package reports failures the same way.
package respond

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/models"
)

// Error writes the JSON error response for err: ValidationError 400,
// NotFoundError 404, RejectedError 409, everything else 500.
func Error(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
	}

	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundErr.Error()})
	}

	var rejectedErr *models.RejectedError
	if errors.As(err, &rejectedErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": rejectedErr.Error()})
	}

	log.Printf("internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
