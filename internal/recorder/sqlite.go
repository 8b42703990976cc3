package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"CozyFishing/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL so dashboards can read while the game writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			run_id       TEXT NOT NULL,
			fish_caught  INTEGER,
			coins_earned INTEGER,
			best_fish    TEXT,
			bait_left    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS catches (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			run_id    TEXT,
			fish_id   TEXT,
			rarity    TEXT,
			zone      TEXT,
			bait      TEXT,
			value     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_catches_ts ON catches(timestamp)`,

		`CREATE TABLE IF NOT EXISTS purchases (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			upgrade     TEXT,
			level       INTEGER,
			price       INTEGER,
			coins_after INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_ts ON purchases(timestamp)`,

		`CREATE TABLE IF NOT EXISTS milestones (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			run_id    TEXT,
			kind      TEXT,
			key       TEXT,
			tier      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_milestones_ts ON milestones(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(sum *model.RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO runs
		(timestamp, run_id, fish_caught, coins_earned, best_fish, bait_left)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), sum.RunID, sum.FishCaught, sum.CoinsEarned,
		string(sum.BestFish), sum.BaitLeft,
	)
	return err
}

func (r *SQLiteRecorder) RecordCatch(rec *CatchRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO catches
		(timestamp, run_id, fish_id, rarity, zone, bait, value)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.RunID, string(rec.FishID), rec.Rarity.String(),
		string(rec.Zone), string(rec.Bait), rec.Value,
	)
	return err
}

func (r *SQLiteRecorder) RecordPurchase(rec *PurchaseRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO purchases
		(timestamp, upgrade, level, price, coins_after)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), string(rec.Upgrade), rec.Level, rec.Price, rec.CoinsAfter,
	)
	return err
}

func (r *SQLiteRecorder) RecordMilestone(rec *MilestoneRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO milestones
		(timestamp, run_id, kind, key, tier)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), rec.RunID, rec.Kind, rec.Key, rec.Tier,
	)
	return err
}

// Totals returns lifetime run count and coins earned across recorded runs.
func (r *SQLiteRecorder) Totals() (runs int, coins int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	err = r.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(coins_earned), 0) FROM runs`).Scan(&runs, &coins)
	return runs, coins, err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
