package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"canopy/internal/apperr"
)

// ErrorHandler maps domain errors onto the wire format: 400 with field
// details for validation failures, 404 and 500 with a bare {error} body.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ve *apperr.ValidationError
		if errors.As(err, &ve) {
			body := fiber.Map{"error": ve.Message}
			if len(ve.Details) > 0 {
				body["details"] = ve.Details
			}
			return c.Status(fiber.StatusBadRequest).JSON(body)
		}

		var nf *apperr.NotFoundError
		if errors.As(err, &nf) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": nf.Message})
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		var ie *apperr.InternalError
		if errors.As(err, &ie) {
			log.Error("internal error", zap.String("path", c.Path()), zap.Error(ie))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ie.Message})
		}

		log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
