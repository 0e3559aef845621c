package model

// Trend labels the direction of a single timeframe.
type Trend string

const (
	Uptrend   Trend = "uptrend"
	Downtrend Trend = "downtrend"
	Neutral   Trend = "neutral"
)

// SignalType is the final direction of an evaluation.
type SignalType string

const (
	SignalLong  SignalType = "long"
	SignalShort SignalType = "short"
	SignalNone  SignalType = "none"
)

// RiskReward holds the price levels derived from a triggering bar and the
// trailing lookback window. Risk and Reward are stored as magnitudes.
type RiskReward struct {
	Entry      float64 `json:"entry"`
	StopLoss   float64 `json:"stop_loss"`
	TakeProfit float64 `json:"take_profit"`
	Risk       float64 `json:"risk"`
	Reward     float64 `json:"reward"`
	Ratio      float64 `json:"ratio"`
}

// SignalDecision is the output of one stateless evaluation of a symbol.
type SignalDecision struct {
	Signal       SignalType  `json:"signal"`
	Trend        string      `json:"trend"`
	Setup        bool        `json:"setup"`
	TriggerLabel string      `json:"trigger"`
	RiskReward   *RiskReward `json:"risk_reward,omitempty"`
	State        string      `json:"state"`
	Narrative    []string    `json:"narrative"`
}
