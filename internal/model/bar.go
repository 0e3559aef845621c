package model

import (
	"fmt"
	"time"
)

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Body returns the absolute size of the candle body.
func (b OHLCV) Body() float64 {
	if b.Close > b.Open {
		return b.Close - b.Open
	}
	return b.Open - b.Close
}

// BodyHigh returns the upper bound of the candle body.
func (b OHLCV) BodyHigh() float64 {
	if b.Close > b.Open {
		return b.Close
	}
	return b.Open
}

// BodyLow returns the lower bound of the candle body.
func (b OHLCV) BodyLow() float64 {
	if b.Close < b.Open {
		return b.Close
	}
	return b.Open
}

// Bullish reports whether the bar closed above its open.
func (b OHLCV) Bullish() bool { return b.Close > b.Open }

// Bearish reports whether the bar closed below its open.
func (b OHLCV) Bearish() bool { return b.Close < b.Open }

// Series holds time-ordered bars for one instrument and one timeframe.
// The analysis packages never mutate a Series; derived values are returned
// as separate slices aligned by index.
type Series struct {
	Symbol    string
	Timeframe string
	Bars      []OHLCV
}

// Empty reports whether the series has no bars.
func (s *Series) Empty() bool { return s == nil || len(s.Bars) == 0 }

// Len returns the number of bars.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}

// Latest returns the most recent bar. Callers must check Empty first.
func (s *Series) Latest() OHLCV { return s.Bars[len(s.Bars)-1] }

// Closes extracts the close prices in bar order.
func (s *Series) Closes() []float64 {
	if s == nil {
		return nil
	}
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Validate checks the structural invariants: strictly increasing timestamps,
// positive prices, and high/low enclosing the body. A violation indicates a
// collaborator bug, so callers should treat the error as fatal for the series.
func (s *Series) Validate() error {
	for i, b := range s.Bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return fmt.Errorf("bar %d: non-positive price", i)
		}
		if b.Low > b.Open || b.Low > b.Close || b.High < b.Open || b.High < b.Close {
			return fmt.Errorf("bar %d: high/low does not enclose body", i)
		}
		if i > 0 && !s.Bars[i-1].Time.Before(b.Time) {
			return fmt.Errorf("bar %d: timestamp not strictly increasing", i)
		}
	}
	return nil
}
