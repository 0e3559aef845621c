package strategy

import (
	"math"

	"ChartSentry/internal/model"
)

// ComputeRiskReward derives entry, stop and target levels from the trailing
// lookback window of the series. For a long the stop sits at the window's
// minimum low; for a short at its maximum high. The target projects the risk
// distance by ratio in the trade direction.
//
// If the window's extreme has already been breached the risk distance is
// non-positive; the levels are still reported as computed and position sizing
// is responsible for treating such a trade as zero size.
func ComputeRiskReward(s *model.Series, direction model.SignalType, lookback int, ratio float64) *model.RiskReward {
	if s.Empty() || direction == model.SignalNone {
		return nil
	}
	if lookback <= 0 || lookback > s.Len() {
		lookback = s.Len()
	}
	window := s.Bars[s.Len()-lookback:]
	entry := s.Latest().Close

	var stop, risk, target float64
	if direction == model.SignalLong {
		stop = window[0].Low
		for _, b := range window[1:] {
			if b.Low < stop {
				stop = b.Low
			}
		}
		risk = entry - stop
		target = entry + risk*ratio
	} else {
		stop = window[0].High
		for _, b := range window[1:] {
			if b.High > stop {
				stop = b.High
			}
		}
		risk = stop - entry
		target = entry - risk*ratio
	}

	return &model.RiskReward{
		Entry:      entry,
		StopLoss:   stop,
		TakeProfit: target,
		Risk:       math.Abs(risk),
		Reward:     math.Abs(risk * ratio),
		Ratio:      ratio,
	}
}
