package model

// IndicatorSet holds per-bar derived values for a Series, aligned by index.
// Values at index i depend only on bars [0..i]; early values carry the natural
// warm-up decay of the exponential recursion and are not NaN-filled.
type IndicatorSet struct {
	EMA20         []float64
	EMA200        []float64
	RSI           []float64
	EMA20Distance []float64 // percentage deviation of close from EMA20
}

// Len returns the number of bars covered.
func (s *IndicatorSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.EMA20)
}

// Empty reports whether there are no computed values.
func (s *IndicatorSet) Empty() bool { return s.Len() == 0 }
