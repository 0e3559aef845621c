package calculator

// RSI computes the relative strength index series over prices. Bar-to-bar
// deltas are split into gains and losses (both as positive magnitudes) and
// each side is smoothed with the same exponential recursion EMA uses, with
// span = period. RS = avgGain/avgLoss and RSI = 100 - 100/(1+RS).
//
// When the smoothed average loss is zero the RS division would blow up, so
// the value saturates at 100 directly; the result therefore always stays
// inside [0, 100]. Early values carry warm-up decay and are statistically
// unreliable but defined from index 0 onward.
func RSI(prices []float64, period int) []float64 {
	if len(prices) == 0 || period <= 0 {
		return nil
	}
	alpha := 2.0 / (float64(period) + 1.0)
	out := make([]float64, len(prices))

	var avgGain, avgLoss float64
	out[0] = 100 // zero average loss at the seed
	for i := 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = gain*alpha + avgGain*(1-alpha)
		avgLoss = loss*alpha + avgLoss*(1-alpha)

		if avgLoss == 0 {
			out[i] = 100
			continue
		}
		rs := avgGain / avgLoss
		out[i] = 100 - 100/(1+rs)
	}
	return out
}
