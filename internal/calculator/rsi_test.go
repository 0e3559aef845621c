package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSI(t *testing.T) {
	t.Run("all gains saturates at 100 and never exceeds it", func(t *testing.T) {
		prices := make([]float64, 60)
		for i := range prices {
			prices[i] = 100 + float64(i)
		}
		out := RSI(prices, 14)
		require.Len(t, out, 60)
		for i, v := range out {
			assert.LessOrEqual(t, v, 100.0, "index %d", i)
			assert.GreaterOrEqual(t, v, 0.0, "index %d", i)
		}
		// Zero average loss hits the saturation guard at every bar.
		assert.Equal(t, 100.0, out[len(out)-1])
	})

	t.Run("all losses decays toward 0 and never goes below it", func(t *testing.T) {
		prices := make([]float64, 60)
		for i := range prices {
			prices[i] = 200 - float64(i)
		}
		out := RSI(prices, 14)
		require.Len(t, out, 60)
		for i, v := range out {
			assert.GreaterOrEqual(t, v, 0.0, "index %d", i)
			assert.LessOrEqual(t, v, 100.0, "index %d", i)
		}
		assert.InDelta(t, 0.0, out[len(out)-1], 1e-9)
	})

	t.Run("mixed series stays inside bounds", func(t *testing.T) {
		prices := []float64{100, 102, 101, 105, 103, 104, 99, 101, 100, 106, 104, 103, 107, 105, 108}
		out := RSI(prices, 14)
		for i, v := range out {
			assert.GreaterOrEqual(t, v, 0.0, "index %d", i)
			assert.LessOrEqual(t, v, 100.0, "index %d", i)
		}
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		assert.Nil(t, RSI(nil, 14))
		assert.Nil(t, RSI([]float64{100, 101}, 0))
	})
}
