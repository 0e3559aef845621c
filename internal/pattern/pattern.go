package pattern

import "ChartSentry/internal/model"

// Pin bar geometry thresholds: the rejection wick must be at least WickRatio
// times the body while the opposite wick stays under OppositeWickRatio times
// the body.
const (
	WickRatio         = 2.0
	OppositeWickRatio = 0.5
)

// ClassifyPin labels a single bar as a pin bar. A pure doji (zero body) is
// never a pin regardless of wick geometry, which also guards the degenerate
// ratio comparisons.
func ClassifyPin(bar model.OHLCV) model.PatternLabel {
	body := bar.Body()
	if body == 0 {
		return model.PatternNone
	}
	upperWick := bar.High - bar.BodyHigh()
	lowerWick := bar.BodyLow() - bar.Low

	if lowerWick >= body*WickRatio && upperWick < body*OppositeWickRatio {
		return model.BullishPin
	}
	if upperWick >= body*WickRatio && lowerWick < body*OppositeWickRatio {
		return model.BearishPin
	}
	return model.PatternNone
}

// ClassifyEngulfing labels the current bar against its predecessor. The body
// range of the current bar must fully contain the previous bar's body range
// (wicks are ignored), with the direction preconditions making the bullish and
// bearish variants mutually exclusive.
func ClassifyEngulfing(curr, prev model.OHLCV) model.PatternLabel {
	contains := curr.BodyLow() <= prev.BodyLow() && curr.BodyHigh() >= prev.BodyHigh()
	if !contains {
		return model.PatternNone
	}
	if prev.Bearish() && curr.Bullish() {
		return model.BullishEngulfing
	}
	if prev.Bullish() && curr.Bearish() {
		return model.BearishEngulfing
	}
	return model.PatternNone
}

// Detect classifies every bar of the series. The result is aligned with the
// bars; index 0 always carries no labels since engulfing needs a predecessor
// and the original pipeline starts scanning at bar 1. The series itself is
// never touched.
func Detect(s *model.Series) []model.BarPatterns {
	if s.Empty() {
		return nil
	}
	out := make([]model.BarPatterns, s.Len())
	out[0] = model.BarPatterns{Pin: model.PatternNone, Engulfing: model.PatternNone}
	for i := 1; i < s.Len(); i++ {
		out[i] = model.BarPatterns{
			Pin:       ClassifyPin(s.Bars[i]),
			Engulfing: ClassifyEngulfing(s.Bars[i], s.Bars[i-1]),
		}
	}
	return out
}
