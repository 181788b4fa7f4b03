package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/storefront/internal/models"
)

// defaultQueryLimit applies when an aggregate query asks for a non-positive limit.
const defaultQueryLimit = 10

// SQLiteSearchLog implements SearchLog using SQLite.
type SQLiteSearchLog struct {
	db   *sql.DB
	path string
}

// NewSQLiteSearchLog opens or creates a SQLite database at dbPath and initializes the schema.
// Parent directories are created if they do not exist.
func NewSQLiteSearchLog(dbPath string) (*SQLiteSearchLog, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteSearchLog{db: db, path: dbPath}, nil
}

// created_at holds unix milliseconds so aggregates keep a usable type.
func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS search_events (
		id TEXT PRIMARY KEY,
		query TEXT NOT NULL,
		normalized_query TEXT NOT NULL,
		kind TEXT NOT NULL,
		result_count INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_search_events_normalized ON search_events(normalized_query);
	CREATE INDEX IF NOT EXISTS idx_search_events_created_at ON search_events(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// RecordSearch inserts an event. A missing ID is generated and a zero
// CreatedAt is set to now; both are written back to event.
func (s *SQLiteSearchLog) RecordSearch(ctx context.Context, event *models.SearchEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO search_events (id, query, normalized_query, kind, result_count, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.Query, event.NormalizedQuery, event.Kind, event.ResultCount, event.DurationMS,
		event.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// TopQueries returns the most frequent non-empty normalized queries, most
// recent first among equal counts.
func (s *SQLiteSearchLog) TopQueries(ctx context.Context, limit int) ([]models.QueryCount, error) {
	return s.queryCounts(ctx, `normalized_query != ''`, limit)
}

// ZeroResultQueries is TopQueries restricted to searches that found nothing.
func (s *SQLiteSearchLog) ZeroResultQueries(ctx context.Context, limit int) ([]models.QueryCount, error) {
	return s.queryCounts(ctx, `normalized_query != '' AND result_count = 0`, limit)
}

func (s *SQLiteSearchLog) queryCounts(ctx context.Context, where string, limit int) ([]models.QueryCount, error) {
	if limit <= 0 {
		limit = defaultQueryLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT normalized_query, COUNT(*) AS n, MAX(created_at) AS last_seen
		 FROM search_events WHERE `+where+`
		 GROUP BY normalized_query
		 ORDER BY n DESC, last_seen DESC, normalized_query ASC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.QueryCount{}
	for rows.Next() {
		var qc models.QueryCount
		var lastSeen int64
		if err := rows.Scan(&qc.Query, &qc.Count, &lastSeen); err != nil {
			return nil, err
		}
		qc.LastSeen = time.UnixMilli(lastSeen)
		out = append(out, qc)
	}
	return out, rows.Err()
}

// CountSearches returns the number of recorded events.
func (s *SQLiteSearchLog) CountSearches(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM search_events`).Scan(&count)
	return count, err
}

// SizeBytes returns the on-disk size of the database and its WAL files.
func (s *SQLiteSearchLog) SizeBytes() (int64, error) {
	return DiskUsageBytes(SQLiteFiles(s.path)...)
}

// Close closes the database.
func (s *SQLiteSearchLog) Close() error {
	return s.db.Close()
}
