package strategy

import "ChartSentry/internal/model"

// AnalyzeTrend derives the trend of a single timeframe from the latest close
// relative to its EMA200. An empty series (or missing indicator data) is
// neutral, and so is an exact tie between close and EMA200.
func AnalyzeTrend(s *model.Series, ind *model.IndicatorSet) model.Trend {
	if s.Empty() || ind.Empty() || ind.Len() != s.Len() {
		return model.Neutral
	}
	close := s.Latest().Close
	ema200 := ind.EMA200[ind.Len()-1]

	switch {
	case close > ema200:
		return model.Uptrend
	case close < ema200:
		return model.Downtrend
	default:
		return model.Neutral
	}
}
