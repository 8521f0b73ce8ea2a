package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"canopy/internal/apperr"
	"canopy/internal/domain"
	"canopy/internal/services"
)

type OrderHandler struct {
	Orders *services.OrderService
	// DemoUserID stands in for a session: all reads are scoped to it until
	// real authentication exists.
	DemoUserID int64
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req domain.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.NewValidationError("Invalid order data",
			apperr.ValidationDetail{Field: "body", Message: "malformed JSON payload"})
	}
	order, err := h.Orders.Create(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.Orders.ListForUser(h.DemoUserID)
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.NewNotFoundError("Order not found")
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return apperr.NewValidationError("Invalid order data",
			apperr.ValidationDetail{Field: "body", Message: "malformed JSON payload"})
	}
	order, err := h.Orders.UpdateStatus(id, body.Status)
	if err != nil {
		return err
	}
	return c.JSON(order)
}
