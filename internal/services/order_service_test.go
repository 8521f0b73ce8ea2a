package services_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"canopy/internal/apperr"
	"canopy/internal/domain"
	"canopy/internal/repos"
	"canopy/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func orderService(t *testing.T, db *sqlx.DB) *services.OrderService {
	t.Helper()
	return services.NewOrderService(repos.NewOrderRepo(db), zap.NewNop())
}

func validOrder() domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		UserID:     1,
		CreditID:   1,
		Quantity:   2,
		UnitPrice:  "45.00",
		TotalPrice: "90.00",
		Duration:   domain.Duration2Year,
	}
}

func TestOrderService_CreateDecrementsStock(t *testing.T) {
	db := memdb(t)
	svc := orderService(t, db)
	creditRepo := repos.NewCreditRepo(db)

	before, err := creditRepo.Get(1)
	require.NoError(t, err)

	order, err := svc.Create(validOrder())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, "45.00", order.UnitPrice)
	assert.Equal(t, "90.00", order.TotalPrice)
	assert.Greater(t, order.ID, int64(0))

	after, err := creditRepo.Get(1)
	require.NoError(t, err)
	assert.Equal(t, before.Available-2, after.Available)
}

func TestOrderService_DeliveryDateRule(t *testing.T) {
	cases := []struct {
		duration string
		years    int
		days     int
	}{
		{domain.DurationImmediate, 0, 1},
		{domain.Duration1Year, 1, 0},
		{domain.Duration2Year, 2, 0},
		{domain.Duration5Year, 5, 0},
		{domain.Duration10Year, 10, 0},
		{"bogus", 0, 7},
	}

	db := memdb(t)
	svc := orderService(t, db)

	for _, tc := range cases {
		t.Run(tc.duration, func(t *testing.T) {
			req := validOrder()
			req.Quantity = 1
			req.TotalPrice = "45.00"
			req.Duration = tc.duration

			order, err := svc.Create(req)
			require.NoError(t, err)

			created, err := time.Parse(time.RFC3339, order.CreatedAt)
			require.NoError(t, err)
			delivery, err := time.Parse(time.RFC3339, order.DeliveryDate)
			require.NoError(t, err)

			assert.Equal(t, created.AddDate(tc.years, 0, tc.days), delivery)
		})
	}
}

func TestOrderService_ServerRecomputesTotal(t *testing.T) {
	db := memdb(t)
	svc := orderService(t, db)

	req := validOrder()
	req.Quantity = 3
	req.TotalPrice = "1.00" // client lies

	order, err := svc.Create(req)
	require.NoError(t, err)
	assert.Equal(t, "135.00", order.TotalPrice)
}

func TestOrderService_InsufficientStockRejected(t *testing.T) {
	db := memdb(t)
	svc := orderService(t, db)
	creditRepo := repos.NewCreditRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	before, err := creditRepo.Get(1)
	require.NoError(t, err)

	req := validOrder()
	req.Quantity = before.Available + 1
	req.TotalPrice = "0.00"

	_, err = svc.Create(req)
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)

	// nothing written, nothing decremented
	after, err := creditRepo.Get(1)
	require.NoError(t, err)
	assert.Equal(t, before.Available, after.Available)

	n, err := orderRepo.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOrderService_UnknownCredit(t *testing.T) {
	db := memdb(t)
	svc := orderService(t, db)

	req := validOrder()
	req.CreditID = 9999

	_, err := svc.Create(req)
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestOrderService_InvalidPayload(t *testing.T) {
	db := memdb(t)
	svc := orderService(t, db)
	orderRepo := repos.NewOrderRepo(db)

	req := validOrder()
	req.Quantity = 0

	_, err := svc.Create(req)
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Details)
	assert.Equal(t, "quantity", ve.Details[0].Field)

	n, err := orderRepo.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	db := memdb(t)
	svc := orderService(t, db)

	order, err := svc.Create(validOrder())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(order.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)

	_, err = svc.UpdateStatus(order.ID, "shipped")
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = svc.UpdateStatus(9999, domain.StatusDelivered)
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestOrderService_ListForUser(t *testing.T) {
	db := memdb(t)
	svc := orderService(t, db)

	_, err := svc.Create(validOrder())
	require.NoError(t, err)

	other := validOrder()
	other.UserID = 2
	_, err = svc.Create(other)
	require.NoError(t, err)

	orders, err := svc.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(1), orders[0].UserID)
}
