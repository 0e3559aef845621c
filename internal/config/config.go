package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "30m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds all application configuration.
type Config struct {
	Watchlist  []string `yaml:"watchlist"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Strategy struct {
		NearEMAPct    float64 `yaml:"near_ema_pct"`
		RSILongBelow  float64 `yaml:"rsi_long_below"`
		RSIShortAbove float64 `yaml:"rsi_short_above"`
		Lookback      int     `yaml:"lookback"`
		RRRatio       float64 `yaml:"rr_ratio"`
		RiskFraction  float64 `yaml:"risk_fraction"`
	} `yaml:"strategy"`
	Notify struct {
		DiscordWebhook string `yaml:"discord_webhook"`
		LINEToken      string `yaml:"line_token"`
	} `yaml:"notify"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Redis struct {
		Addr     string   `yaml:"addr"`
		Password string   `yaml:"password"`
		DB       int      `yaml:"db"`
		TTL      Duration `yaml:"ttl"`
	} `yaml:"redis"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Account struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"account"`
	API struct {
		Listen string `yaml:"listen"`
	} `yaml:"api"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Watchlist = splitList(v)
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("DISCORD_WEBHOOK_URL"); v != "" {
		cfg.Notify.DiscordWebhook = v
	}
	if v := os.Getenv("LINE_NOTIFY_TOKEN"); v != "" {
		cfg.Notify.LINEToken = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("API_LISTEN"); v != "" {
		cfg.API.Listen = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = []string{"AAPL", "NVDA", "GOOGL"}
	}
	if cfg.Strategy.NearEMAPct == 0 {
		cfg.Strategy.NearEMAPct = 1.0
	}
	if cfg.Strategy.RSILongBelow == 0 {
		cfg.Strategy.RSILongBelow = 40
	}
	if cfg.Strategy.RSIShortAbove == 0 {
		cfg.Strategy.RSIShortAbove = 60
	}
	if cfg.Strategy.Lookback == 0 {
		cfg.Strategy.Lookback = 10
	}
	if cfg.Strategy.RRRatio == 0 {
		cfg.Strategy.RRRatio = 2.0
	}
	if cfg.Strategy.RiskFraction == 0 {
		cfg.Strategy.RiskFraction = 0.02
	}
	if cfg.Schedule.ScanCron == "" {
		// Every 15 minutes during extended trading hours, weekdays.
		cfg.Schedule.ScanCron = "0 */15 6-22 * * 1-5"
	}
	if cfg.Redis.TTL == 0 {
		cfg.Redis.TTL = Duration(time.Hour)
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/chartsentry.db"
	}
	if cfg.Account.StateFile == "" {
		cfg.Account.StateFile = "data/account_state.json"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Watchlist) == 0 {
		return fmt.Errorf("watchlist must not be empty")
	}
	if c.Strategy.RiskFraction <= 0 || c.Strategy.RiskFraction >= 1 {
		return fmt.Errorf("strategy.risk_fraction must be in (0, 1)")
	}
	if c.Strategy.RRRatio <= 0 {
		return fmt.Errorf("strategy.rr_ratio must be positive")
	}
	if c.Strategy.Lookback <= 0 {
		return fmt.Errorf("strategy.lookback must be positive")
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
