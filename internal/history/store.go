// Package history persists run reports to a local SQLite database so past
// maintenance runs can be inspected with the history command.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mode-7/moddocs/internal/patch"
)

// Run is one recorded maintenance run with its per-file outcomes.
type Run struct {
	RunID    string
	Command  string
	Started  time.Time
	Finished time.Time
	Outcomes []patch.Outcome
}

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (creating if necessary) the history database at path.
// Use ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		command TEXT NOT NULL,
		started INTEGER NOT NULL,
		finished INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS outcomes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(run_id),
		file TEXT NOT NULL,
		status TEXT NOT NULL,
		detail TEXT,
		error TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_outcomes_run_id ON outcomes(run_id);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores a finished run report.
func (s *Store) Record(ctx context.Context, report *patch.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO runs (run_id, command, started, finished) VALUES (?, ?, ?, ?)",
		report.RunID, report.Command, report.Started.Unix(), report.Finished.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, o := range report.Outcomes {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO outcomes (run_id, file, status, detail, error) VALUES (?, ?, ?, ?, ?)",
			report.RunID, o.File, string(o.Status), o.Detail, o.Error,
		)
		if err != nil {
			return fmt.Errorf("insert outcome: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first, with their outcomes.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT run_id, command, started, finished FROM runs ORDER BY started DESC, run_id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, finished int64
		if err := rows.Scan(&r.RunID, &r.Command, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Started = time.Unix(started, 0).UTC()
		r.Finished = time.Unix(finished, 0).UTC()
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	for i := range runs {
		outcomes, err := s.outcomes(ctx, runs[i].RunID)
		if err != nil {
			return nil, err
		}
		runs[i].Outcomes = outcomes
	}
	return runs, nil
}

func (s *Store) outcomes(ctx context.Context, runID string) ([]patch.Outcome, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT file, status, detail, error FROM outcomes WHERE run_id = ? ORDER BY id",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []patch.Outcome
	for rows.Next() {
		var o patch.Outcome
		var status string
		if err := rows.Scan(&o.File, &status, &o.Detail, &o.Error); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		o.Status = patch.Status(status)
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }
