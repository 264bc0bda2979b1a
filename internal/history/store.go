// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records conversion runs in a local SQLite database so a
// user can see what was converted, when, and with which options.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/vcard-convert/pkg/types"
)

const (
	dbFile            = "history.db"
	defaultMaxResults = 20
)

// Store manages the history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates dir/history.db and its schema.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			status TEXT NOT NULL,
			remove_fn INTEGER NOT NULL,
			remove_photos INTEGER NOT NULL,
			records INTEGER NOT NULL,
			organizations INTEGER NOT NULL,
			unplaced_kinds INTEGER NOT NULL,
			photo_lines INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores run and returns its assigned ID. A zero StartedAt is
// replaced with the current time.
func (s *Store) Record(ctx context.Context, run types.Run) (int64, error) {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, input, output, status, remove_fn, remove_photos,
			records, organizations, unplaced_kinds, photo_lines)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339Nano), run.Input, run.Output, string(run.Status),
		run.Options.RemoveFormattedName, run.Options.RemovePhotos,
		run.Summary.Records, run.Summary.Organizations, run.Summary.UnplacedKinds, run.Summary.PhotoLines,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	return res.LastInsertId()
}

// List returns up to limit runs, newest first. A limit of zero or less uses
// the store default.
func (s *Store) List(ctx context.Context, limit int) ([]types.Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, input, output, status, remove_fn, remove_photos,
			records, organizations, unplaced_kinds, photo_lines
		 FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var (
			r         types.Run
			startedAt string
			status    string
		)
		if err := rows.Scan(&r.ID, &startedAt, &r.Input, &r.Output, &status,
			&r.Options.RemoveFormattedName, &r.Options.RemovePhotos,
			&r.Summary.Records, &r.Summary.Organizations, &r.Summary.UnplacedKinds, &r.Summary.PhotoLines,
		); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Status = types.ConversionStatus(status)
		if t, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			r.StartedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
