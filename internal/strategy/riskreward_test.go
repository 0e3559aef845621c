package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChartSentry/internal/model"
)

func seriesFromBars(bars []model.OHLCV) *model.Series {
	t0 := time.Date(2024, 5, 7, 9, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i].Time = t0.Add(time.Duration(i) * 15 * time.Minute)
	}
	return &model.Series{Symbol: "TEST", Timeframe: "15m", Bars: bars}
}

func TestComputeRiskReward(t *testing.T) {
	t.Run("long stop at window minimum low", func(t *testing.T) {
		bars := make([]model.OHLCV, 12)
		for i := range bars {
			bars[i] = model.OHLCV{Open: 95, High: 101, Low: 94, Close: 96, Volume: 100}
		}
		// The window minimum sits a few bars back from the entry.
		bars[7].Low = 90
		bars[11] = model.OHLCV{Open: 99, High: 101, Low: 97, Close: 100, Volume: 100}

		rr := ComputeRiskReward(seriesFromBars(bars), model.SignalLong, 10, 2.0)
		require.NotNil(t, rr)
		assert.InDelta(t, 100.0, rr.Entry, 1e-9)
		assert.InDelta(t, 90.0, rr.StopLoss, 1e-9)
		assert.InDelta(t, 10.0, rr.Risk, 1e-9)
		assert.InDelta(t, 120.0, rr.TakeProfit, 1e-9)
		assert.InDelta(t, 20.0, rr.Reward, 1e-9)
		assert.InDelta(t, 2.0, rr.Ratio, 1e-9)
	})

	t.Run("short stop at window maximum high", func(t *testing.T) {
		bars := make([]model.OHLCV, 12)
		for i := range bars {
			bars[i] = model.OHLCV{Open: 105, High: 106, Low: 99, Close: 104, Volume: 100}
		}
		bars[8].High = 110
		bars[11] = model.OHLCV{Open: 101, High: 103, Low: 99, Close: 100, Volume: 100}

		rr := ComputeRiskReward(seriesFromBars(bars), model.SignalShort, 10, 2.0)
		require.NotNil(t, rr)
		assert.InDelta(t, 100.0, rr.Entry, 1e-9)
		assert.InDelta(t, 110.0, rr.StopLoss, 1e-9)
		assert.InDelta(t, 10.0, rr.Risk, 1e-9)
		assert.InDelta(t, 80.0, rr.TakeProfit, 1e-9)
	})

	t.Run("lookback wider than series is clamped", func(t *testing.T) {
		bars := []model.OHLCV{
			{Open: 100, High: 101, Low: 95, Close: 100, Volume: 100},
			{Open: 100, High: 102, Low: 98, Close: 101, Volume: 100},
			{Open: 101, High: 103, Low: 99, Close: 102, Volume: 100},
		}
		rr := ComputeRiskReward(seriesFromBars(bars), model.SignalLong, 50, 2.0)
		require.NotNil(t, rr)
		assert.InDelta(t, 95.0, rr.StopLoss, 1e-9)
	})

	t.Run("window excludes bars older than lookback", func(t *testing.T) {
		bars := make([]model.OHLCV, 15)
		for i := range bars {
			bars[i] = model.OHLCV{Open: 100, High: 101, Low: 98, Close: 100, Volume: 100}
		}
		// A deep low outside the 10-bar window must not set the stop.
		bars[2].Low = 50
		rr := ComputeRiskReward(seriesFromBars(bars), model.SignalLong, 10, 2.0)
		require.NotNil(t, rr)
		assert.InDelta(t, 98.0, rr.StopLoss, 1e-9)
	})

	t.Run("no direction yields no levels", func(t *testing.T) {
		bars := []model.OHLCV{{Open: 100, High: 101, Low: 99, Close: 100, Volume: 100}}
		assert.Nil(t, ComputeRiskReward(seriesFromBars(bars), model.SignalNone, 10, 2.0))
	})

	t.Run("empty series yields no levels", func(t *testing.T) {
		assert.Nil(t, ComputeRiskReward(&model.Series{Symbol: "TEST"}, model.SignalLong, 10, 2.0))
	})
}
