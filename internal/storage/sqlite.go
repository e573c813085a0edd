package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avelkovs/fleetdesk/internal/migrations"

	_ "modernc.org/sqlite"
)

// sessionSlot is the key of the singleton current-user record.
const sessionSlot = "currentUser"

// SQLiteStore implements Store over a local sqlite database with one row per
// collection and one row for the session slot.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore returns a SQLiteStore bound to an already-migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLite opens (creating if necessary) the sqlite database at dsn, runs
// migrations, and returns a ready store.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// single logical writer; also keeps ":memory:" databases on one connection
	db.SetMaxOpenConns(1)

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return NewSQLiteStore(db), nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ReadCollection(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = ?`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection[%s]: %w", name, err)
	}
	return data, nil
}

func (s *SQLiteStore) WriteCollection(ctx context.Context, name string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (name, data) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data
	`, name, data)
	if err != nil {
		return fmt.Errorf("failed to write collection[%s]: %w", name, err)
	}
	return nil
}

func (s *SQLiteStore) ReadSession(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM session WHERE slot = ?`, sessionSlot).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return data, nil
}

func (s *SQLiteStore) WriteSession(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (slot, data) VALUES (?, ?)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data
	`, sessionSlot, data)
	if err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ClearSession(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM session WHERE slot = ?`, sessionSlot)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
