package portfolio

// RecommendedPositionSize computes the share count under a fixed
// fractional-risk rule: the account may lose at most balance*riskFraction if
// the stop is hit, so shares = floor(risk budget / risk per share).
//
// A stop at or above the entry means the trade risks an undefined or
// unbounded amount per share, so the recommendation is zero — the guard runs
// before the division. The result is never negative.
func RecommendedPositionSize(balance, riskFraction, entry, stopLoss float64) int {
	if entry <= stopLoss {
		return 0
	}
	riskPerShare := entry - stopLoss
	shares := int(balance * riskFraction / riskPerShare)
	if shares < 0 {
		return 0
	}
	return shares
}

// MaxShares computes the largest affordable position, floored to a multiple
// of the lot size. Unit 1 means single-share lots (fractional-lot brokers);
// Japanese round lots would pass 100.
func MaxShares(cash, price float64, unit int) int {
	if price <= 0 || unit <= 0 {
		return 0
	}
	shares := int(cash / price)
	return (shares / unit) * unit
}
