package calculator

// EMA computes the exponential moving average of prices with the given span.
// The recursion seeds on the first price (adjust=false semantics):
//
//	ema[0] = price[0]
//	ema[i] = price[i]*α + ema[i-1]*(1-α),  α = 2/(span+1)
//
// The result is aligned with prices; values at index i depend only on
// prices [0..i]. An empty input or non-positive span yields nil.
func EMA(prices []float64, span int) []float64 {
	if len(prices) == 0 || span <= 0 {
		return nil
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out := make([]float64, len(prices))
	out[0] = prices[0]
	for i := 1; i < len(prices); i++ {
		out[i] = prices[i]*alpha + out[i-1]*(1-alpha)
	}
	return out
}
