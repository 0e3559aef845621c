package collector

import "ChartSentry/internal/model"

// Supported bar intervals.
const (
	Interval15m = "15m"
	Interval1h  = "1h"
	Interval1d  = "1d"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchBars(symbol, interval string, limit int) ([]model.OHLCV, error)
	Name() string
}
