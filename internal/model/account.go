package model

import "github.com/shopspring/decimal"

// Holding is one portfolio position as reported by the account-state provider.
type Holding struct {
	Ticker       string          `json:"ticker"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgCost      decimal.Decimal `json:"avg_cost"`
	StopLoss     decimal.Decimal `json:"stop_loss"`
	Currency     string          `json:"currency"`
	CurrentPrice decimal.Decimal `json:"current_price"`
}

// AccountState is the caller-supplied funds and holdings snapshot used by the
// position-sizing calculator. The core never fetches or owns this data.
type AccountState struct {
	Cash     map[string]decimal.Decimal `json:"cash_by_currency"`
	Holdings []Holding                  `json:"holdings"`
}
