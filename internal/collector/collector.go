package collector

import (
	"fmt"
	"time"

	"ChartSentry/internal/model"
)

// Bar counts requested per timeframe: roughly five trading days of 15-minute
// bars and a month of hourly bars before 4h aggregation.
const (
	mainBarLimit   = 130
	hourlyBarLimit = 170
)

// Timeframe labels attached to collected series.
const (
	MainTimeframe   = "15m"
	HigherTimeframe = "4h"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  map[string][]model.OHLCV // keyed by interval, overrides generation
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ string, interval string, limit int) ([]model.OHLCV, error) {
	if bars, ok := m.Bars[interval]; ok {
		return bars, nil
	}
	step := 15 * time.Minute
	if interval == Interval1h {
		step = time.Hour
	}
	return GenerateBars(m.Price, limit, step), nil
}

// GenerateBars produces a gently drifting synthetic series ending now.
func GenerateBars(basePrice float64, count int, step time.Duration) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	now := time.Now().Truncate(step)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   now.Add(-time.Duration(count-i) * step),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches the two timeframes the signal pipeline consumes: the
// 15-minute main series and a 4-hour higher series aggregated from hourly
// bars (most chart APIs do not serve 4h directly).
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches and validates both series for a symbol. An empty fetch
// result comes back as an empty series, which the signal pipeline treats as
// insufficient data; a malformed series is an error since it indicates a
// data-source bug rather than a market condition.
func (c *Collector) Collect(symbol string) (main, higher *model.Series, err error) {
	mainBars, err := c.Fetcher.FetchBars(symbol, Interval15m, mainBarLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch %s %s bars: %w", symbol, Interval15m, err)
	}
	hourlyBars, err := c.Fetcher.FetchBars(symbol, Interval1h, hourlyBarLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch %s %s bars: %w", symbol, Interval1h, err)
	}

	main = &model.Series{Symbol: symbol, Timeframe: MainTimeframe, Bars: mainBars}
	higher = &model.Series{Symbol: symbol, Timeframe: HigherTimeframe, Bars: AggregateToFourHour(hourlyBars)}

	if err := main.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s %s series: %w", symbol, MainTimeframe, err)
	}
	if err := higher.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s %s series: %w", symbol, HigherTimeframe, err)
	}
	return main, higher, nil
}
