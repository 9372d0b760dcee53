package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"kubyshka/internal/common"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteKV implements the KV interface on a single-file SQLite database.
// Values keep their whole-document semantics; SQLite only replaces the data
// directory layout for users who prefer one file.
type SQLiteKV struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteKV opens (creating if needed) the database at dbPath.
func NewSQLiteKV(dbPath string) (*SQLiteKV, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteKV{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}

// Get returns the document stored under key, or common.ErrNotFound.
func (s *SQLiteKV) Get(ctx context.Context, key Key) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM documents WHERE key = ?`, string(key)).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document %s: %w", key, err)
	}
	return value, nil
}

// Set replaces the document stored under key.
func (s *SQLiteKV) Set(ctx context.Context, key Key, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP`,
		string(key), value)
	if err != nil {
		return fmt.Errorf("failed to store document %s: %w", key, err)
	}
	return nil
}
