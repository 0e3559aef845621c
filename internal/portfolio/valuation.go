package portfolio

import (
	"github.com/shopspring/decimal"

	"ChartSentry/internal/model"
)

// MarketValue returns the mark-to-market value of a holding.
func MarketValue(h model.Holding) decimal.Decimal {
	return h.CurrentPrice.Mul(h.Quantity)
}

// UnrealizedPnL returns the open profit or loss of a holding against its
// average cost.
func UnrealizedPnL(h model.Holding) decimal.Decimal {
	return h.CurrentPrice.Sub(h.AvgCost).Mul(h.Quantity)
}

// TotalAssets sums cash and holdings per currency. The result is a fresh map;
// the input state is not modified.
func TotalAssets(state *model.AccountState) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(state.Cash))
	for ccy, amount := range state.Cash {
		totals[ccy] = amount
	}
	for _, h := range state.Holdings {
		totals[h.Currency] = totals[h.Currency].Add(MarketValue(h))
	}
	return totals
}

// TotalUnrealizedPnL sums the open profit or loss across all holdings.
func TotalUnrealizedPnL(holdings []model.Holding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(UnrealizedPnL(h))
	}
	return total
}

// RiskExposure sums the amount lost if every holding with a stop set fell to
// its stop. Holdings without a stop, or already below it, contribute nothing.
func RiskExposure(holdings []model.Holding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		if h.StopLoss.IsZero() {
			continue
		}
		perShare := h.CurrentPrice.Sub(h.StopLoss)
		if perShare.IsPositive() {
			total = total.Add(perShare.Mul(h.Quantity))
		}
	}
	return total
}
