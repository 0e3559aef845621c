package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists signal and scan history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for concurrent reads while the monitor writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Infof("sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS signals (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			symbol        TEXT NOT NULL,
			signal        TEXT NOT NULL,
			trend         TEXT,
			setup_ok      INTEGER,
			trigger_label TEXT,
			state         TEXT,
			entry         REAL,
			stop_loss     REAL,
			take_profit   REAL,
			risk          REAL,
			reward        REAL,
			ratio         REAL,
			narrative     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_ts ON signals(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_symbol ON signals(symbol)`,

		`CREATE TABLE IF NOT EXISTS scans (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			symbols     INTEGER,
			signals     INTEGER,
			errors      INTEGER,
			duration_ms INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_ts ON scans(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSignal(rec *SignalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dec := rec.Decision
	var entry, stop, target, risk, reward, ratio sql.NullFloat64
	if rr := dec.RiskReward; rr != nil {
		entry = sql.NullFloat64{Float64: rr.Entry, Valid: true}
		stop = sql.NullFloat64{Float64: rr.StopLoss, Valid: true}
		target = sql.NullFloat64{Float64: rr.TakeProfit, Valid: true}
		risk = sql.NullFloat64{Float64: rr.Risk, Valid: true}
		reward = sql.NullFloat64{Float64: rr.Reward, Valid: true}
		ratio = sql.NullFloat64{Float64: rr.Ratio, Valid: true}
	}

	setup := 0
	if dec.Setup {
		setup = 1
	}

	_, err := r.db.Exec(`INSERT INTO signals
		(timestamp, symbol, signal, trend, setup_ok, trigger_label, state,
		 entry, stop_loss, take_profit, risk, reward, ratio, narrative)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.Time.Unix(), rec.Symbol, string(dec.Signal), dec.Trend, setup,
		dec.TriggerLabel, dec.State,
		entry, stop, target, risk, reward, ratio,
		strings.Join(dec.Narrative, "\n"),
	)
	return err
}

func (r *SQLiteRecorder) RecordScan(evt *ScanEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO scans
		(timestamp, symbols, signals, errors, duration_ms)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.Symbols, evt.Signals, evt.Errors,
		evt.Duration.Milliseconds(),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Info("closing sqlite recorder")
	return r.db.Close()
}
