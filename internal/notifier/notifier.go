package notifier

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"ChartSentry/internal/model"
)

// Event is one detected signal handed to the delivery channels.
type Event struct {
	Symbol   string
	Decision *model.SignalDecision
	Time     time.Time
}

// Notifier delivers a signal event over one channel.
type Notifier interface {
	Notify(ctx context.Context, evt *Event) error
	Name() string
}

// NotifyWithRetry delivers with exponential backoff.
func NotifyWithRetry(ctx context.Context, n Notifier, evt *Event, maxRetries int) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if err := n.Notify(ctx, evt); err != nil {
			lastErr = err
			backoff := time.Duration(1<<uint(i)) * time.Second
			log.WithError(err).Warnf("%s send failed (attempt %d/%d), retrying in %v",
				n.Name(), i+1, maxRetries+1, backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("all %d retries exhausted: %w", maxRetries+1, lastErr)
}

// Multi fans one event out to every configured channel. Delivery failures on
// one channel do not block the others; the first error is returned.
type Multi struct {
	Channels []Notifier
}

func (m *Multi) Name() string { return "multi" }

func (m *Multi) Notify(ctx context.Context, evt *Event) error {
	var firstErr error
	for _, ch := range m.Channels {
		if err := NotifyWithRetry(ctx, ch, evt, 3); err != nil {
			log.WithError(err).Errorf("deliver via %s", ch.Name())
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
