package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"ChartSentry/internal/account"
	"ChartSentry/internal/api"
	"ChartSentry/internal/collector"
	"ChartSentry/internal/config"
	"ChartSentry/internal/dedup"
	"ChartSentry/internal/notifier"
	"ChartSentry/internal/recorder"
	"ChartSentry/internal/scheduler"
	"ChartSentry/internal/strategy"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.Info("ChartSentry starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("config validation")
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Infof("data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher)

	// Strategy thresholds
	strategyCfg := strategy.Config{
		NearEMAPct:    cfg.Strategy.NearEMAPct,
		RSILongBelow:  cfg.Strategy.RSILongBelow,
		RSIShortAbove: cfg.Strategy.RSIShortAbove,
		Lookback:      cfg.Strategy.Lookback,
		RRRatio:       cfg.Strategy.RRRatio,
	}

	// Account state provider
	acct, err := account.NewManager(cfg.Account.StateFile)
	if err != nil {
		log.WithError(err).Fatal("init account manager")
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Notification channels
	multi := &notifier.Multi{}
	if cfg.Notify.DiscordWebhook != "" {
		multi.Channels = append(multi.Channels, notifier.NewDiscordNotifier(cfg.Notify.DiscordWebhook, cfg.Proxy))
	}
	if cfg.Notify.LINEToken != "" {
		multi.Channels = append(multi.Channels, notifier.NewLINENotifier(cfg.Notify.LINEToken, cfg.Proxy))
	}
	if len(multi.Channels) == 0 {
		log.Warn("no notification channels configured, signals will only be recorded")
	}

	// De-duplication
	ttl := time.Duration(cfg.Redis.TTL)
	var deduper dedup.Deduper
	if cfg.Redis.Addr != "" {
		rd, err := dedup.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, ttl)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, using in-memory dedup")
			deduper = dedup.NewMemory(ttl)
		} else {
			deduper = rd
			defer rd.Close()
		}
	} else {
		deduper = dedup.NewMemory(ttl)
	}

	// Recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.WithError(err).Warn("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Scheduler
	sched := scheduler.NewScheduler(ctx, col, strategyCfg, cfg.Watchlist, deduper, multi, rec)
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.WithError(err).Fatal("register scan task")
	}
	sched.Start()
	defer sched.Stop()

	// Optional HTTP API
	var srv *http.Server
	if cfg.API.Listen != "" {
		handler := api.NewHandler(col, strategyCfg, acct)
		srv = &http.Server{Addr: cfg.API.Listen, Handler: api.SetupRoutes(handler)}
		go func() {
			log.Infof("API listening on %s", cfg.API.Listen)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.WithError(err).Error("API server")
			}
		}()
	}

	// Optional: scan immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Info("RUN_ON_START enabled, scanning now")
		go sched.RunScanNow()
	}

	log.Info("ChartSentry is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("API shutdown")
		}
	}
	cancel()
	log.Info("ChartSentry stopped")
}
