package model

// PatternLabel classifies a candlestick pattern on a single bar.
type PatternLabel string

const (
	PatternNone      PatternLabel = "none"
	BullishPin       PatternLabel = "bullish_pin"
	BearishPin       PatternLabel = "bearish_pin"
	BullishEngulfing PatternLabel = "bullish_engulfing"
	BearishEngulfing PatternLabel = "bearish_engulfing"
)

// BarPatterns holds the winning label per pattern family for one bar.
// The pin and engulfing families are independent; a bar can carry both.
type BarPatterns struct {
	Pin       PatternLabel
	Engulfing PatternLabel
}
