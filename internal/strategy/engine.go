package strategy

import (
	"fmt"
	"math"

	"ChartSentry/internal/calculator"
	"ChartSentry/internal/model"
	"ChartSentry/internal/pattern"
)

// Config holds the tunable thresholds of the three-stage evaluation.
type Config struct {
	NearEMAPct    float64 // setup band around EMA20, in percent of price
	RSILongBelow  float64 // long setup fires below this RSI
	RSIShortAbove float64 // short setup fires above this RSI
	Lookback      int     // trailing bars for the stop-loss extreme
	RRRatio       float64 // reward distance as a multiple of risk
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		NearEMAPct:    1.0,
		RSILongBelow:  40,
		RSIShortAbove: 60,
		Lookback:      10,
		RRRatio:       2.0,
	}
}

// Evaluation state descriptions.
const (
	StateStandAside    = "stand aside"
	StateAwaitingPull  = "awaiting pullback"
	StateAwaitingRally = "awaiting rally"
	StateBuySignal     = "buy signal"
	StateSellSignal    = "sell signal"
)

// Evaluate runs the three-stage decision with default thresholds.
func Evaluate(main, higher *model.Series) *model.SignalDecision {
	return EvaluateWith(DefaultConfig(), main, higher)
}

// EvaluateWith runs the environment → setup → trigger decision over the main
// timeframe series and its coarser higher timeframe. Each stage gates the
// next; the narrative records one line per passed stage and stops at the
// first failure. The call is stateless: indicators and patterns are derived
// fresh from the inputs and nothing is retained between evaluations.
func EvaluateWith(cfg Config, main, higher *model.Series) *model.SignalDecision {
	dec := &model.SignalDecision{
		Signal: model.SignalNone,
		State:  StateStandAside,
	}
	if main.Empty() || higher.Empty() {
		return dec
	}

	mainInd := calculator.ComputeIndicators(main)
	higherInd := calculator.ComputeIndicators(higher)

	mainTrend := AnalyzeTrend(main, mainInd)
	higherTrend := AnalyzeTrend(higher, higherInd)
	dec.Trend = fmt.Sprintf("main: %s / higher: %s", mainTrend, higherTrend)

	longEnv := mainTrend == model.Uptrend && higherTrend == model.Uptrend
	shortEnv := mainTrend == model.Downtrend && higherTrend == model.Downtrend

	switch {
	case longEnv:
		dec.Narrative = append(dec.Narrative, "✓ uptrend environment")
		if !setupHolds(cfg, mainInd, true) {
			return dec
		}
		dec.Setup = true
		dec.State = StateAwaitingPull
		dec.Narrative = append(dec.Narrative,
			fmt.Sprintf("✓ pullback zone (within %.1f%% of 20EMA or RSI<%.0f)", cfg.NearEMAPct, cfg.RSILongBelow))

		label, ok := triggerLabel(pattern.Detect(main), true)
		if !ok {
			return dec
		}
		dec.Signal = model.SignalLong
		dec.TriggerLabel = label
		dec.State = StateBuySignal
		dec.Narrative = append(dec.Narrative, "✓ trigger: "+label)
		dec.RiskReward = ComputeRiskReward(main, model.SignalLong, cfg.Lookback, cfg.RRRatio)

	case shortEnv:
		dec.Narrative = append(dec.Narrative, "✓ downtrend environment")
		if !setupHolds(cfg, mainInd, false) {
			return dec
		}
		dec.Setup = true
		dec.State = StateAwaitingRally
		dec.Narrative = append(dec.Narrative,
			fmt.Sprintf("✓ rally zone (within %.1f%% of 20EMA or RSI>%.0f)", cfg.NearEMAPct, cfg.RSIShortAbove))

		label, ok := triggerLabel(pattern.Detect(main), false)
		if !ok {
			return dec
		}
		dec.Signal = model.SignalShort
		dec.TriggerLabel = label
		dec.State = StateSellSignal
		dec.Narrative = append(dec.Narrative, "✓ trigger: "+label)
		dec.RiskReward = ComputeRiskReward(main, model.SignalShort, cfg.Lookback, cfg.RRRatio)

	default:
		dec.Narrative = append(dec.Narrative, "△ trend unclear, standing aside")
	}

	return dec
}

// setupHolds checks the stage-2 condition on the latest bar: a pullback to the
// 20EMA band or momentum exhaustion on RSI. The two conditions are an OR.
func setupHolds(cfg Config, ind *model.IndicatorSet, isLong bool) bool {
	i := ind.Len() - 1
	nearEMA := math.Abs(ind.EMA20Distance[i]) <= cfg.NearEMAPct
	if isLong {
		return nearEMA || ind.RSI[i] < cfg.RSILongBelow
	}
	return nearEMA || ind.RSI[i] > cfg.RSIShortAbove
}

// triggerLabel checks the stage-3 condition: a confirming candle pattern on
// the latest bar of the main timeframe.
func triggerLabel(patterns []model.BarPatterns, isLong bool) (string, bool) {
	last := patterns[len(patterns)-1]
	if isLong {
		if last.Pin == model.BullishPin {
			return "bullish pin bar", true
		}
		if last.Engulfing == model.BullishEngulfing {
			return "bullish engulfing", true
		}
	} else {
		if last.Pin == model.BearishPin {
			return "bearish pin bar", true
		}
		if last.Engulfing == model.BearishEngulfing {
			return "bearish engulfing", true
		}
	}
	return "", false
}
