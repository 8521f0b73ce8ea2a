package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"canopy/internal/apperr"
	"canopy/internal/domain"
	"canopy/internal/repos"
	"canopy/internal/validate"
)

type OrderService struct {
	Orders *repos.OrderRepo
	Log    *zap.Logger
}

func NewOrderService(orders *repos.OrderRepo, log *zap.Logger) *OrderService {
	return &OrderService{Orders: orders, Log: log}
}

// Create validates the payload, prices the order server-side and places it.
// Placement and the stock decrement commit together; an over-quantity request
// is rejected and writes nothing.
func (s *OrderService) Create(req domain.CreateOrderRequest) (domain.Order, error) {
	if err := validate.Struct("Invalid order data", req); err != nil {
		return domain.Order{}, err
	}

	unit, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		// validate.Struct already vetted the string; keep the guard anyway.
		return domain.Order{}, apperr.NewValidationError("Invalid order data",
			apperr.ValidationDetail{Field: "unitPrice", Message: "must be a non-negative decimal string"})
	}
	total := unit.Mul(decimal.NewFromInt(int64(req.Quantity)))

	// The client sends its own total; trust the server's arithmetic instead.
	if client, err := decimal.NewFromString(req.TotalPrice); err == nil && !client.Equal(total) {
		s.Log.Warn("order total mismatch",
			zap.Int64("credit_id", req.CreditID),
			zap.String("client_total", client.String()),
			zap.String("server_total", total.String()),
		)
	}

	now := time.Now().UTC()
	order := domain.Order{
		UserID:       req.UserID,
		CreditID:     req.CreditID,
		Quantity:     req.Quantity,
		UnitPrice:    unit.StringFixed(2),
		TotalPrice:   total.StringFixed(2),
		Duration:     req.Duration,
		Status:       domain.StatusPending,
		DeliveryDate: domain.DeliveryDate(now, req.Duration).Format(time.RFC3339),
		CreatedAt:    now.Format(time.RFC3339),
	}

	placed, err := s.Orders.Place(order)
	switch err {
	case nil:
	case repos.ErrNotFound:
		return domain.Order{}, apperr.NewNotFoundError("Carbon credit not found")
	case repos.ErrInsufficientStock:
		return domain.Order{}, apperr.NewValidationError("Invalid order data",
			apperr.ValidationDetail{
				Field:   "quantity",
				Message: fmt.Sprintf("exceeds available stock for credit %d", req.CreditID),
			})
	default:
		return domain.Order{}, apperr.NewInternalError("Failed to create order", err)
	}

	s.Log.Info("order placed",
		zap.Int64("order_id", placed.ID),
		zap.Int64("credit_id", placed.CreditID),
		zap.Int("quantity", placed.Quantity),
		zap.String("total", placed.TotalPrice),
		zap.String("delivery_date", placed.DeliveryDate),
	)
	return placed, nil
}

func (s *OrderService) ListForUser(userID int64) ([]domain.Order, error) {
	orders, err := s.Orders.ListByUser(userID)
	if err != nil {
		return nil, apperr.NewInternalError("Failed to fetch orders", err)
	}
	return orders, nil
}

// UpdateStatus moves an order to a new lifecycle state. No transition rules
// are enforced beyond the status being a known one.
func (s *OrderService) UpdateStatus(id int64, status string) (domain.Order, error) {
	if !domain.ValidStatus(status) {
		return domain.Order{}, apperr.NewValidationError("Invalid order data",
			apperr.ValidationDetail{Field: "status", Message: "must be one of pending, processing, confirmed, delivered"})
	}
	order, err := s.Orders.UpdateStatus(id, status)
	if err == repos.ErrNotFound {
		return domain.Order{}, apperr.NewNotFoundError("Order not found")
	}
	if err != nil {
		return domain.Order{}, apperr.NewInternalError("Failed to update order", err)
	}
	return order, nil
}
