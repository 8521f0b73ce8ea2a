package handlers

import (
	"github.com/gofiber/fiber/v2"

	"canopy/internal/services"
)

type StatsHandler struct {
	Market *services.MarketService
}

func (h *StatsHandler) Get(c *fiber.Ctx) error {
	stats, err := h.Market.Stats()
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
