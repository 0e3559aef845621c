package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChartSentry/internal/account"
	"ChartSentry/internal/collector"
	"ChartSentry/internal/model"
	"ChartSentry/internal/strategy"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	acct, err := account.NewManager(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	col := collector.NewCollector(&collector.MockFetcher{Price: 100})
	return NewHandler(col, strategy.DefaultConfig(), acct)
}

func TestHealthCheck(t *testing.T) {
	router := SetupRoutes(newTestHandler(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestGetSignal(t *testing.T) {
	router := SetupRoutes(newTestHandler(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/signal/AAPL", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Symbol   string                `json:"symbol"`
		Decision *model.SignalDecision `json:"decision"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "AAPL", body.Symbol)
	require.NotNil(t, body.Decision)
	assert.NotEmpty(t, body.Decision.State)
}

func TestGetSignalFetchFailure(t *testing.T) {
	h := newTestHandler(t)
	// Bars that fail series validation surface as a gateway error.
	h.Collector = collector.NewCollector(&collector.MockFetcher{
		Price: 100,
		Bars: map[string][]model.OHLCV{
			collector.Interval15m: {{Open: -1, High: 1, Low: 1, Close: 1}},
		},
	})
	router := SetupRoutes(h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/signal/AAPL", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestPositionSize(t *testing.T) {
	router := SetupRoutes(newTestHandler(t))

	post := func(payload string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/position-size", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid request", func(t *testing.T) {
		w := post(`{"balance":1000000,"risk_fraction":0.02,"entry":100,"stop_loss":90,"cash":50000}`)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]int
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 2000, body["recommended_shares"])
		assert.Equal(t, 500, body["max_shares"])
	})

	t.Run("risk fraction out of range", func(t *testing.T) {
		w := post(`{"balance":1000000,"risk_fraction":2,"entry":100,"stop_loss":90}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := post(`{not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAccount(t *testing.T) {
	h := newTestHandler(t)
	h.Account.SetCash("USD", decimal.NewFromInt(5000))
	h.Account.UpsertHolding(model.Holding{
		Ticker:       "AAPL",
		Quantity:     decimal.NewFromInt(10),
		AvgCost:      decimal.NewFromInt(150),
		Currency:     "USD",
		CurrentPrice: decimal.NewFromInt(160),
	})
	router := SetupRoutes(h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/account", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Cash        map[string]decimal.Decimal `json:"cash_by_currency"`
		TotalAssets map[string]decimal.Decimal `json:"total_assets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Cash["USD"].Equal(decimal.NewFromInt(5000)))
	assert.True(t, body.TotalAssets["USD"].Equal(decimal.NewFromInt(6600)))
}
