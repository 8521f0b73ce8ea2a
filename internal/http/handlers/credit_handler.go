package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"canopy/internal/apperr"
	"canopy/internal/services"
)

type CreditHandler struct {
	Catalog *services.CatalogService
}

func (h *CreditHandler) List(c *fiber.Ctx) error {
	credits, err := h.Catalog.ListCredits()
	if err != nil {
		return err
	}
	return c.JSON(credits)
}

func (h *CreditHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		// Non-numeric ids behave like ids that don't exist.
		return apperr.NewNotFoundError("Carbon credit not found")
	}
	credit, err := h.Catalog.GetCredit(id)
	if err != nil {
		return err
	}
	return c.JSON(credit)
}
