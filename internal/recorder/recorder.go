package recorder

import (
	"time"

	"ChartSentry/internal/model"
)

// SignalRecord holds one detected signal for history.
type SignalRecord struct {
	Symbol   string
	Decision *model.SignalDecision
	Time     time.Time
}

// ScanEvent summarizes one watchlist scan.
type ScanEvent struct {
	Symbols  int
	Signals  int
	Errors   int
	Duration time.Duration
}

// Recorder persists historical data for later review.
type Recorder interface {
	RecordSignal(rec *SignalRecord) error
	RecordScan(evt *ScanEvent) error
	Close() error
}
