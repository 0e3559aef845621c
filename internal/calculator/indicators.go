package calculator

import "ChartSentry/internal/model"

// Indicator parameters shared across the pipeline.
const (
	EMAFastSpan = 20
	EMASlowSpan = 200
	RSIPeriod   = 14
)

// ComputeIndicators derives the full indicator set for a series. The input is
// never mutated; all derived values come back as index-aligned slices. An
// empty series produces an empty set rather than an error, because missing
// data is a routine condition the signal pipeline maps to "no signal".
func ComputeIndicators(s *model.Series) *model.IndicatorSet {
	if s.Empty() {
		return &model.IndicatorSet{}
	}
	closes := s.Closes()

	set := &model.IndicatorSet{
		EMA20:  EMA(closes, EMAFastSpan),
		EMA200: EMA(closes, EMASlowSpan),
		RSI:    RSI(closes, RSIPeriod),
	}

	set.EMA20Distance = make([]float64, len(closes))
	for i, c := range closes {
		set.EMA20Distance[i] = (c - set.EMA20[i]) / set.EMA20[i] * 100
	}
	return set
}
