package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"ChartSentry/internal/collector"
	"ChartSentry/internal/dedup"
	"ChartSentry/internal/model"
	"ChartSentry/internal/notifier"
	"ChartSentry/internal/recorder"
	"ChartSentry/internal/strategy"
)

// Scheduler runs the periodic watchlist scan.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Strategy  strategy.Config
	Watchlist []string
	Deduper   dedup.Deduper
	Notifier  notifier.Notifier
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, cfg strategy.Config,
	watchlist []string, dd dedup.Deduper, nt notifier.Notifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Strategy:  cfg,
		Watchlist: watchlist,
		Deduper:   dd,
		Notifier:  nt,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// Register installs the scan task under the given cron expression.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info("scheduler stopped")
}

// RunScanNow executes the scan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	started := time.Now()
	log.Infof("scanning %d symbols", len(s.Watchlist))

	signals, errs := 0, 0
	for _, symbol := range s.Watchlist {
		fired, err := s.scanSymbol(symbol)
		if err != nil {
			log.WithError(err).Errorf("scan %s", symbol)
			errs++
			continue
		}
		if fired {
			signals++
		}
	}

	if err := s.Recorder.RecordScan(&recorder.ScanEvent{
		Symbols:  len(s.Watchlist),
		Signals:  signals,
		Errors:   errs,
		Duration: time.Since(started),
	}); err != nil {
		log.WithError(err).Error("record scan")
	}
	log.Infof("scan done: %d signals, %d errors in %v", signals, errs, time.Since(started))
}

// scanSymbol evaluates one symbol and delivers a fresh signal if found.
func (s *Scheduler) scanSymbol(symbol string) (bool, error) {
	main, higher, err := s.Collector.Collect(symbol)
	if err != nil {
		return false, err
	}

	dec := strategy.EvaluateWith(s.Strategy, main, higher)
	if dec.Signal == model.SignalNone {
		return false, nil
	}

	barTime := main.Latest().Time
	fresh, err := s.Deduper.FirstSeen(s.Ctx, symbol, dec.Signal, barTime)
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	if !fresh {
		log.Debugf("%s %s on bar %v already notified", symbol, dec.Signal, barTime)
		return false, nil
	}

	evt := &notifier.Event{Symbol: symbol, Decision: dec, Time: barTime}
	if err := s.Notifier.Notify(s.Ctx, evt); err != nil {
		log.WithError(err).Errorf("notify %s", symbol)
	}

	if err := s.Recorder.RecordSignal(&recorder.SignalRecord{
		Symbol:   symbol,
		Decision: dec,
		Time:     barTime,
	}); err != nil {
		log.WithError(err).Errorf("record signal %s", symbol)
	}
	return true, nil
}
