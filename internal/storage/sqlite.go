package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
)

// SQLiteStore keeps the snapshot in a single-file local database, one JSON
// value per key in a key/value table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS app_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads the stored snapshot. Missing or malformed data loads as the
// empty snapshot; only a database failure is reported as an error.
func (s *SQLiteStore) Load(ctx context.Context) (*ledger.Snapshot, error) {
	var value string
	query := `SELECT value FROM app_state WHERE key = ?`
	err := s.db.QueryRowContext(ctx, query, storageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	snap := &ledger.Snapshot{}
	if err := json.Unmarshal([]byte(value), snap); err != nil {
		slog.Warn("stored snapshot is malformed, starting empty", "error", err)
		return ledger.NewSnapshot(), nil
	}
	snap.Normalize()

	return snap, nil
}

// Save replaces the stored snapshot.
func (s *SQLiteStore) Save(ctx context.Context, snap *ledger.Snapshot) error {
	value, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.ExecContext(ctx, query, storageKey, string(value)); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
