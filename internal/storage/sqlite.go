// Package storage provides SQLite-based persistence for the run ledger:
// one row per finished life. Nothing stored here is ever loaded back into a
// game. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/grapplecore/internal/core"
)

// Outcome is how a life ended.
type Outcome string

const (
	OutcomeEscaped Outcome = "escaped"
	OutcomeDied    Outcome = "died"
)

// Store manages the SQLite database connection for the run ledger.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished life.
type RunRecord struct {
	ID        int64
	Outcome   Outcome
	Cause     string // "poison", "crab" or "flyer" for deaths; empty for escapes
	Turns     int
	Amber     int // amber held when the life ended
	Life      int // life number within the play session
	CreatedAt time.Time
}

// RunFromEvent builds the ledger row for an event that ends a life.
// It returns false for every other kind of event.
func RunFromEvent(ev core.Event) (RunRecord, bool) {
	var outcome Outcome
	switch ev.Kind {
	case core.EventDied:
		outcome = OutcomeDied
	case core.EventEscaped:
		outcome = OutcomeEscaped
	default:
		return RunRecord{}, false
	}
	return RunRecord{
		Outcome: outcome,
		Cause:   ev.Cause,
		Turns:   ev.Turns,
		Amber:   ev.Amber,
		Life:    ev.Life,
	}, true
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			cause TEXT NOT NULL DEFAULT '',
			turns INTEGER NOT NULL,
			amber INTEGER NOT NULL DEFAULT 0,
			life INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_outcome ON runs(outcome);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished life.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.Outcome != OutcomeEscaped && r.Outcome != OutcomeDied {
		return 0, fmt.Errorf("storage: unknown outcome %q", r.Outcome)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (outcome, cause, turns, amber, life) VALUES (?, ?, ?, ?, ?)",
		string(r.Outcome), r.Cause, r.Turns, r.Amber, r.Life,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the last N finished lives, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, cause, turns, amber, life, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &outcome, &r.Cause, &r.Turns, &r.Amber, &r.Life, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunStats contains aggregated statistics over the whole ledger.
type RunStats struct {
	Runs          int
	Escapes       int
	Deaths        int
	BestTurns     int // fewest turns in an escape, 0 if none
	AmberHeld     int // most amber held at the end of a life
	DeathsByCause map[string]int
	LastPlayed    time.Time
}

// Stats aggregates the ledger.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{DeathsByCause: make(map[string]int)}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN outcome = ? THEN turns END), 0),
		        COALESCE(MAX(amber), 0)
		 FROM runs`,
		string(OutcomeEscaped), string(OutcomeDied), string(OutcomeEscaped),
	).Scan(&stats.Runs, &stats.Escapes, &stats.Deaths, &stats.BestTurns, &stats.AmberHeld)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT cause, COUNT(*) FROM runs WHERE outcome = ? GROUP BY cause`,
		string(OutcomeDied),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get death causes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cause string
		var n int
		if err := rows.Scan(&cause, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan cause row: %w", err)
		}
		stats.DeathsByCause[cause] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM runs ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes the whole ledger.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
