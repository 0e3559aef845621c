package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ChartSentry/internal/calculator"
	"ChartSentry/internal/model"
)

// ramp builds a series of flat bars whose close moves by step per bar.
func ramp(symbol, timeframe string, start, step float64, n int, interval time.Duration) *model.Series {
	bars := make([]model.OHLCV, n)
	t0 := time.Date(2024, 5, 7, 9, 0, 0, 0, time.UTC)
	for i := range bars {
		p := start + step*float64(i)
		bars[i] = model.OHLCV{
			Time: t0.Add(time.Duration(i) * interval),
			Open: p, High: p, Low: p, Close: p, Volume: 1000,
		}
	}
	return &model.Series{Symbol: symbol, Timeframe: timeframe, Bars: bars}
}

func TestAnalyzeTrend(t *testing.T) {
	t.Run("rising series is an uptrend", func(t *testing.T) {
		s := ramp("TEST", "15m", 100, 0.05, 250, 15*time.Minute)
		ind := calculator.ComputeIndicators(s)
		assert.Equal(t, model.Uptrend, AnalyzeTrend(s, ind))
	})

	t.Run("falling series is a downtrend", func(t *testing.T) {
		s := ramp("TEST", "15m", 200, -0.05, 250, 15*time.Minute)
		ind := calculator.ComputeIndicators(s)
		assert.Equal(t, model.Downtrend, AnalyzeTrend(s, ind))
	})

	t.Run("flat series ties close to EMA200 and stays neutral", func(t *testing.T) {
		s := ramp("TEST", "15m", 100, 0, 250, 15*time.Minute)
		ind := calculator.ComputeIndicators(s)
		assert.Equal(t, model.Neutral, AnalyzeTrend(s, ind))
	})

	t.Run("empty series is neutral", func(t *testing.T) {
		s := &model.Series{Symbol: "TEST", Timeframe: "15m"}
		assert.Equal(t, model.Neutral, AnalyzeTrend(s, calculator.ComputeIndicators(s)))
	})

	t.Run("short series still classifies", func(t *testing.T) {
		s := ramp("TEST", "15m", 100, 1, 5, 15*time.Minute)
		ind := calculator.ComputeIndicators(s)
		assert.Equal(t, model.Uptrend, AnalyzeTrend(s, ind))
	})
}
