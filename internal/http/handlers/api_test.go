package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"canopy/internal/config"
	"canopy/internal/domain"
	"canopy/internal/http/handlers"
	"canopy/internal/repos"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{DBDSN: ":memory:", DemoUserID: 1}
	db, err := repos.OpenDB(cfg.DBDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return handlers.NewApp(db, cfg, zap.NewNop())
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestGetCarbonCredits(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/carbon-credits", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var credits []domain.CarbonCredit
	require.NoError(t, json.Unmarshal(raw, &credits))
	require.Len(t, credits, 6)
	assert.Equal(t, int64(1), credits[0].ID)
	assert.Equal(t, "45.00", credits[0].Price)
}

func TestGetCarbonCreditByID(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/carbon-credits/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var credit domain.CarbonCredit
	require.NoError(t, json.Unmarshal(raw, &credit))
	assert.Equal(t, "Solar Farm India", credit.Name)

	for _, path := range []string{"/api/carbon-credits/999", "/api/carbon-credits/abc"} {
		resp, raw := doJSON(t, app, http.MethodGet, path, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode, path)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "Carbon credit not found", body["error"])
	}
}

func TestCreateOrder(t *testing.T) {
	app := newTestApp(t)

	payload := map[string]any{
		"userId":     1,
		"creditId":   1,
		"quantity":   3,
		"unitPrice":  "45.00",
		"totalPrice": "135.00",
		"duration":   "1-year",
	}
	resp, raw := doJSON(t, app, http.MethodPost, "/api/orders", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var order domain.Order
	require.NoError(t, json.Unmarshal(raw, &order))
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "135.00", order.TotalPrice)
	assert.NotEmpty(t, order.DeliveryDate)

	// stock decremented from 12500
	resp, raw = doJSON(t, app, http.MethodGet, "/api/carbon-credits/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var credit domain.CarbonCredit
	require.NoError(t, json.Unmarshal(raw, &credit))
	assert.Equal(t, 12497, credit.Available)

	// order visible for the demo user
	resp, raw = doJSON(t, app, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []domain.Order
	require.NoError(t, json.Unmarshal(raw, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCreateOrderValidation(t *testing.T) {
	app := newTestApp(t)

	// missing quantity
	payload := map[string]any{
		"userId":     1,
		"creditId":   1,
		"unitPrice":  "45.00",
		"totalPrice": "45.00",
		"duration":   "immediate",
	}
	resp, raw := doJSON(t, app, http.MethodPost, "/api/orders", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Invalid order data", body.Error)
	require.NotEmpty(t, body.Details)
	assert.Equal(t, "quantity", body.Details[0].Field)

	// no order created
	resp, raw = doJSON(t, app, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []domain.Order
	require.NoError(t, json.Unmarshal(raw, &orders))
	assert.Empty(t, orders)
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	app := newTestApp(t)

	payload := map[string]any{
		"userId":     1,
		"creditId":   6,
		"quantity":   1_000_000,
		"unitPrice":  "41.00",
		"totalPrice": "41000000.00",
		"duration":   "immediate",
	}
	resp, _ := doJSON(t, app, http.MethodPost, "/api/orders", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// stock untouched
	resp, raw := doJSON(t, app, http.MethodGet, "/api/carbon-credits/6", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var credit domain.CarbonCredit
	require.NoError(t, json.Unmarshal(raw, &credit))
	assert.Equal(t, 6750, credit.Available)
}

func TestUpdateOrderStatus(t *testing.T) {
	app := newTestApp(t)

	payload := map[string]any{
		"userId":     1,
		"creditId":   2,
		"quantity":   1,
		"unitPrice":  "38.00",
		"totalPrice": "38.00",
		"duration":   "immediate",
	}
	resp, raw := doJSON(t, app, http.MethodPost, "/api/orders", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order domain.Order
	require.NoError(t, json.Unmarshal(raw, &order))

	resp, raw = doJSON(t, app, http.MethodPatch, "/api/orders/1/status", map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var updated domain.Order
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "confirmed", updated.Status)

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/orders/1/status", map[string]string{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/orders/99/status", map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetPortfolio(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/portfolio", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []domain.PortfolioItem
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].UserID)
}

func TestSubmitContact(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/contact", map[string]any{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"interest":  "Buying carbon credits",
		"message":   "Tell me more.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var body struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Contact request submitted successfully", body.Message)
	assert.Equal(t, int64(1), body.ID)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/contact", map[string]any{
		"firstName": "Ada",
		"email":     "bad-email",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMarketStats(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/market-stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats domain.MarketStats
	require.NoError(t, json.Unmarshal(raw, &stats))
	assert.Equal(t, "0.1M", stats.TotalCredits)
	assert.Equal(t, "15,200", stats.ActiveBuyers)
	assert.Equal(t, "3,840", stats.VerifiedSellers)
	assert.Equal(t, "26K", stats.CarbonOffset)
}

func TestMalformedJSONBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
