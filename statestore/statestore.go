// Package statestore provides a small sqlite-backed key counter, used to
// demonstrate a handler that carries state across calls via mcpcontext
// rather than package-level globals.
package statestore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store is a sqlite-backed counter keyed by name. It is registered into a
// service's mcpcontext.Context once at startup and shared by every call
// to a handler that declares a dependency on *Store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a sqlite database at path and
// ensures the counters table exists. path may be ":memory:" for a
// process-lifetime, non-persistent store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS counters (name TEXT PRIMARY KEY, value INTEGER NOT NULL DEFAULT 0)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize state store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Increment adds delta to the named counter, creating it at zero first if
// needed, and returns its new value.
func (s *Store) Increment(name string, delta int64) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO counters (name, value) VALUES (?, 0) ON CONFLICT(name) DO NOTHING`, name); err != nil {
		return 0, fmt.Errorf("failed to seed counter: %w", err)
	}
	if _, err := tx.Exec(`UPDATE counters SET value = value + ? WHERE name = ?`, delta, name); err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	var value int64
	if err := tx.QueryRow(`SELECT value FROM counters WHERE name = ?`, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to read counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return value, nil
}

// Value returns the current value of the named counter, or zero if it
// has never been incremented.
func (s *Store) Value(name string) (int64, error) {
	var value int64
	err := s.db.QueryRow(`SELECT value FROM counters WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter: %w", err)
	}
	return value, nil
}
