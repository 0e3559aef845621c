package dedup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ChartSentry/internal/model"
)

// Deduper suppresses repeat notifications for the same signal on the same
// bar. The signal core stays stateless; this collaborator owns the "last
// signal" memory keyed by (symbol, signal type, bar timestamp).
type Deduper interface {
	// FirstSeen records the signal and reports true when it has not been
	// seen within the retention window.
	FirstSeen(ctx context.Context, symbol string, signal model.SignalType, barTime time.Time) (bool, error)
}

func key(symbol string, signal model.SignalType, barTime time.Time) string {
	return fmt.Sprintf("signal:%s:%s:%d", symbol, signal, barTime.Unix())
}

// Memory is an in-process Deduper for redis-less deployments and tests.
type Memory struct {
	mu   sync.Mutex
	ttl  time.Duration
	seen map[string]time.Time
	now  func() time.Time
}

// NewMemory creates a Memory deduper with the given retention window.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, seen: make(map[string]time.Time), now: time.Now}
}

func (m *Memory) FirstSeen(_ context.Context, symbol string, signal model.SignalType, barTime time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, expiry := range m.seen {
		if now.After(expiry) {
			delete(m.seen, k)
		}
	}

	k := key(symbol, signal, barTime)
	if _, ok := m.seen[k]; ok {
		return false, nil
	}
	m.seen[k] = now.Add(m.ttl)
	return true, nil
}
