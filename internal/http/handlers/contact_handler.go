package handlers

import (
	"github.com/gofiber/fiber/v2"

	"canopy/internal/apperr"
	"canopy/internal/domain"
	"canopy/internal/services"
)

type ContactHandler struct {
	Contacts *services.ContactService
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req domain.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.NewValidationError("Invalid contact data",
			apperr.ValidationDetail{Field: "body", Message: "malformed JSON payload"})
	}
	created, err := h.Contacts.Submit(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Contact request submitted successfully",
		"id":      created.ID,
	})
}
