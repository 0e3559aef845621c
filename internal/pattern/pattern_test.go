package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChartSentry/internal/model"
)

func bar(o, h, l, c float64) model.OHLCV {
	return model.OHLCV{Open: o, High: h, Low: l, Close: c, Volume: 100}
}

func TestClassifyPin(t *testing.T) {
	cases := []struct {
		name string
		bar  model.OHLCV
		want model.PatternLabel
	}{
		{"bullish pin, long lower wick", bar(100.0, 100.7, 98.5, 100.5), model.BullishPin},
		{"bearish pin, long upper wick", bar(100.5, 102.0, 99.9, 100.0), model.BearishPin},
		{"doji is never a pin", bar(100, 103, 97, 100), model.PatternNone},
		{"zero-range bar", bar(100, 100, 100, 100), model.PatternNone},
		{"lower wick too short", bar(100.0, 100.6, 99.2, 100.5), model.PatternNone},
		{"opposite wick too long", bar(100.0, 101.0, 98.5, 100.5), model.PatternNone},
		{"bearish body can still be bullish pin", bar(100.5, 100.6, 98.9, 100.0), model.BullishPin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyPin(tc.bar))
		})
	}
}

func TestClassifyEngulfing(t *testing.T) {
	t.Run("bullish engulfing", func(t *testing.T) {
		// bearish bar followed by a bullish bar whose body spans it.
		prev := bar(105, 105.5, 99.8, 100)
		curr := bar(99.5, 106, 99.2, 105.5)
		assert.Equal(t, model.BullishEngulfing, ClassifyEngulfing(curr, prev))
	})

	t.Run("bearish engulfing", func(t *testing.T) {
		prev := bar(100, 105.2, 99.8, 105)
		curr := bar(105.5, 106, 99.2, 99.5)
		assert.Equal(t, model.BearishEngulfing, ClassifyEngulfing(curr, prev))
	})

	t.Run("partial body overlap is not engulfing", func(t *testing.T) {
		prev := bar(105, 105.5, 99.8, 100)
		curr := bar(100.5, 106, 100.2, 105.5)
		assert.Equal(t, model.PatternNone, ClassifyEngulfing(curr, prev))
	})

	t.Run("wicks are ignored for containment", func(t *testing.T) {
		// prev body [102,103] with huge wicks; curr body covers the body only.
		prev := bar(103, 108, 97, 102)
		curr := bar(101.5, 104, 101, 103.5)
		assert.Equal(t, model.BullishEngulfing, ClassifyEngulfing(curr, prev))
	})

	t.Run("same direction bars never engulf", func(t *testing.T) {
		prev := bar(100, 102, 99.5, 101.5)
		curr := bar(99, 103, 98.5, 102.5)
		assert.Equal(t, model.PatternNone, ClassifyEngulfing(curr, prev))
	})

	t.Run("doji predecessor is neither bullish nor bearish", func(t *testing.T) {
		prev := bar(100, 101, 99, 100)
		curr := bar(99, 102, 98.5, 101.5)
		assert.Equal(t, model.PatternNone, ClassifyEngulfing(curr, prev))
	})
}

func TestDetect(t *testing.T) {
	start := time.Date(2024, 5, 7, 9, 30, 0, 0, time.UTC)
	bars := []model.OHLCV{
		bar(105, 105.5, 99.8, 100),
		bar(99.5, 106, 99.2, 105.5),
		bar(100.0, 100.7, 98.5, 100.5),
	}
	for i := range bars {
		bars[i].Time = start.Add(time.Duration(i) * 15 * time.Minute)
	}
	s := &model.Series{Symbol: "TEST", Timeframe: "15m", Bars: bars}

	out := Detect(s)
	require.Len(t, out, 3)

	assert.Equal(t, model.PatternNone, out[0].Pin)
	assert.Equal(t, model.PatternNone, out[0].Engulfing)
	assert.Equal(t, model.BullishEngulfing, out[1].Engulfing)
	assert.Equal(t, model.BullishPin, out[2].Pin)

	assert.Nil(t, Detect(&model.Series{Symbol: "TEST"}))
}
