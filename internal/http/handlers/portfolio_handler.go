package handlers

import (
	"github.com/gofiber/fiber/v2"

	"canopy/internal/services"
)

type PortfolioHandler struct {
	Portfolio  *services.PortfolioService
	DemoUserID int64
}

func (h *PortfolioHandler) List(c *fiber.Ctx) error {
	items, err := h.Portfolio.ListForUser(h.DemoUserID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}
