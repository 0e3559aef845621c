package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChartSentry/internal/model"
)

func TestMemoryFirstSeen(t *testing.T) {
	ctx := context.Background()
	barTime := time.Date(2024, 5, 7, 9, 45, 0, 0, time.UTC)

	t.Run("first hit passes, repeat is suppressed", func(t *testing.T) {
		m := NewMemory(time.Hour)

		first, err := m.FirstSeen(ctx, "AAPL", model.SignalLong, barTime)
		require.NoError(t, err)
		assert.True(t, first)

		again, err := m.FirstSeen(ctx, "AAPL", model.SignalLong, barTime)
		require.NoError(t, err)
		assert.False(t, again)
	})

	t.Run("key covers symbol, direction and bar time", func(t *testing.T) {
		m := NewMemory(time.Hour)
		_, err := m.FirstSeen(ctx, "AAPL", model.SignalLong, barTime)
		require.NoError(t, err)

		otherSymbol, _ := m.FirstSeen(ctx, "NVDA", model.SignalLong, barTime)
		otherSignal, _ := m.FirstSeen(ctx, "AAPL", model.SignalShort, barTime)
		otherBar, _ := m.FirstSeen(ctx, "AAPL", model.SignalLong, barTime.Add(15*time.Minute))

		assert.True(t, otherSymbol)
		assert.True(t, otherSignal)
		assert.True(t, otherBar)
	})

	t.Run("entries expire after the retention window", func(t *testing.T) {
		m := NewMemory(time.Hour)
		clock := time.Date(2024, 5, 7, 10, 0, 0, 0, time.UTC)
		m.now = func() time.Time { return clock }

		first, err := m.FirstSeen(ctx, "AAPL", model.SignalLong, barTime)
		require.NoError(t, err)
		assert.True(t, first)

		clock = clock.Add(30 * time.Minute)
		again, _ := m.FirstSeen(ctx, "AAPL", model.SignalLong, barTime)
		assert.False(t, again)

		clock = clock.Add(2 * time.Hour)
		expired, _ := m.FirstSeen(ctx, "AAPL", model.SignalLong, barTime)
		assert.True(t, expired)
	})
}
