package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"ChartSentry/internal/account"
	"ChartSentry/internal/collector"
	"ChartSentry/internal/portfolio"
	"ChartSentry/internal/strategy"
)

// Handler serves the on-demand dashboard endpoints.
type Handler struct {
	Collector *collector.Collector
	Strategy  strategy.Config
	Account   *account.Manager
}

// NewHandler creates an API handler.
func NewHandler(col *collector.Collector, cfg strategy.Config, acct *account.Manager) *Handler {
	return &Handler{Collector: col, Strategy: cfg, Account: acct}
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("encode response")
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
}

// GetSignal evaluates a symbol on demand and returns the full decision.
func (h *Handler) GetSignal(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	main, higher, err := h.Collector.Collect(symbol)
	if err != nil {
		log.WithError(err).Errorf("collect %s", symbol)
		respondError(w, http.StatusBadGateway, "data fetch failed: "+err.Error())
		return
	}

	dec := strategy.EvaluateWith(h.Strategy, main, higher)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":   symbol,
		"decision": dec,
	})
}

// positionSizeRequest is the sizing calculator input.
type positionSizeRequest struct {
	Balance      float64 `json:"balance"`
	RiskFraction float64 `json:"risk_fraction"`
	Entry        float64 `json:"entry"`
	StopLoss     float64 `json:"stop_loss"`
	Cash         float64 `json:"cash"`
	Unit         int     `json:"unit"`
}

// PositionSize runs the fixed fractional-risk calculator.
func (h *Handler) PositionSize(w http.ResponseWriter, r *http.Request) {
	var req positionSizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RiskFraction <= 0 || req.RiskFraction >= 1 {
		respondError(w, http.StatusBadRequest, "risk_fraction must be in (0, 1)")
		return
	}
	if req.Unit <= 0 {
		req.Unit = 1
	}

	resp := map[string]int{
		"recommended_shares": portfolio.RecommendedPositionSize(req.Balance, req.RiskFraction, req.Entry, req.StopLoss),
		"max_shares":         portfolio.MaxShares(req.Cash, req.Entry, req.Unit),
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetAccount returns the account snapshot with totals and risk exposure.
func (h *Handler) GetAccount(w http.ResponseWriter, _ *http.Request) {
	state := h.Account.GetState()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"cash_by_currency": state.Cash,
		"holdings":         state.Holdings,
		"total_assets":     portfolio.TotalAssets(&state),
		"unrealized_pnl":   portfolio.TotalUnrealizedPnL(state.Holdings),
		"risk_exposure":    portfolio.RiskExposure(state.Holdings),
	})
}
