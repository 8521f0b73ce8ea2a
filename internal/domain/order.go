package domain

import "time"

// Order lifecycle states. Nothing enforces transitions between them.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusConfirmed  = "confirmed"
	StatusDelivered  = "delivered"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusConfirmed, StatusDelivered:
		return true
	}
	return false
}

// Duration codes select forward-delivery timing.
const (
	DurationImmediate = "immediate"
	Duration1Year     = "1-year"
	Duration2Year     = "2-year"
	Duration5Year     = "5-year"
	Duration10Year    = "10-year"
)

// DeliveryDate maps a duration code to a delivery date. Unrecognized codes
// fall back to one week out rather than failing the order.
func DeliveryDate(from time.Time, duration string) time.Time {
	switch duration {
	case DurationImmediate:
		return from.AddDate(0, 0, 1)
	case Duration1Year:
		return from.AddDate(1, 0, 0)
	case Duration2Year:
		return from.AddDate(2, 0, 0)
	case Duration5Year:
		return from.AddDate(5, 0, 0)
	case Duration10Year:
		return from.AddDate(10, 0, 0)
	default:
		return from.AddDate(0, 0, 7)
	}
}

// CreateOrderRequest is the POST /api/orders payload. TotalPrice is what the
// client thinks it owes; the server recomputes it and keeps its own figure.
type CreateOrderRequest struct {
	UserID     int64  `json:"userId" validate:"required,gt=0"`
	CreditID   int64  `json:"creditId" validate:"required,gt=0"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	UnitPrice  string `json:"unitPrice" validate:"required,decimal"`
	TotalPrice string `json:"totalPrice" validate:"required,decimal"`
	Duration   string `json:"duration" validate:"required"`
}

// CreateContactRequest is the POST /api/contact payload.
type CreateContactRequest struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Company   *string `json:"company"`
	Interest  string  `json:"interest" validate:"required"`
	Message   string  `json:"message" validate:"required"`
}
