package runstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

const memory = ":memory:"

var ErrNotFound = errors.New("run not found")

// Entry is one row of the runs table.
type Entry struct {
	ID         string `db:"id"`
	Source     string `db:"source"`
	Mode       string `db:"mode"`
	Chunking   string `db:"chunking"`
	Merge      string `db:"merge_strategy"`
	Total      int    `db:"total_chunks"`
	Succeeded  int    `db:"succeeded_chunks"`
	Failed     int    `db:"failed_chunks"`
	Words      int    `db:"source_words"`
	StartedMS  int64  `db:"started_at"`
	ElapsedMS  int64  `db:"elapsed_ms"`
	OutputPath string `db:"output_path"`
	Error      string `db:"error"`
}

// StartedAt converts the stored timestamp.
func (e Entry) StartedAt() time.Time {
	return time.UnixMilli(e.StartedMS)
}

// Elapsed converts the stored duration.
func (e Entry) Elapsed() time.Duration {
	return time.Duration(e.ElapsedMS) * time.Millisecond
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		mode TEXT NOT NULL,
		chunking TEXT NOT NULL,
		merge_strategy TEXT NOT NULL DEFAULT '',
		total_chunks INTEGER NOT NULL DEFAULT 0,
		succeeded_chunks INTEGER NOT NULL DEFAULT 0,
		failed_chunks INTEGER NOT NULL DEFAULT 0,
		source_words INTEGER NOT NULL DEFAULT 0,
		started_at INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL DEFAULT 0,
		output_path TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
}

type implStore struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at path, creating its directory and schema.
func Open(path string) (Store, error) {
	dsn := path
	if path != memory {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init schema: %w", err)
		}
	}
	return &implStore{db: db}, nil
}

// Record inserts or replaces the run's history row.
func (s *implStore) Record(ctx context.Context, run model.Run) error {
	if run.ID == "" {
		return fmt.Errorf("record run: empty id")
	}
	e := Entry{
		ID:         run.ID,
		Source:     run.Source,
		Mode:       run.Mode,
		Chunking:   run.Chunking,
		Merge:      run.Artifact.Strategy,
		Total:      len(run.Results),
		Succeeded:  run.Artifact.Succeeded,
		Failed:     run.Artifact.Failed,
		Words:      run.Artifact.SourceWords,
		StartedMS:  run.StartedAt.UnixMilli(),
		ElapsedMS:  run.Elapsed().Milliseconds(),
		OutputPath: run.OutputPath,
		Error:      run.Error,
	}
	if run.Artifact.Total > 0 {
		e.Total = run.Artifact.Total
	} else {
		c := model.Stats(run.Results)
		e.Succeeded, e.Failed = c.Succeeded, c.Failed
	}

	_, err := s.db.NamedExecContext(ctx, `INSERT OR REPLACE INTO runs
		(id, source, mode, chunking, merge_strategy, total_chunks, succeeded_chunks, failed_chunks,
		 source_words, started_at, elapsed_ms, output_path, error)
		VALUES (:id, :source, :mode, :chunking, :merge_strategy, :total_chunks, :succeeded_chunks, :failed_chunks,
		 :source_words, :started_at, :elapsed_ms, :output_path, :error)`, e)
	if err != nil {
		return fmt.Errorf("record run %s: %w", run.ID, err)
	}
	return nil
}

func (s *implStore) Get(ctx context.Context, id string) (Entry, error) {
	var e Entry
	err := s.db.GetContext(ctx, &e, `SELECT * FROM runs WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get run %s: %w", id, err)
	}
	return e, nil
}

// List returns the most recent runs first. A non-positive limit returns every run.
func (s *implStore) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	var out []Entry
	if err := s.db.SelectContext(ctx, &out, `SELECT * FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return out, nil
}

func (s *implStore) Close() error {
	return s.db.Close()
}
