package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PostgresKV keeps the flat key-value layout in a two-column table so the
// console can be pointed at a real database without touching any repository
// code.
type PostgresKV struct {
	db *sqlx.DB
}

// NewPostgresKV wraps an open database handle.
func NewPostgresKV(db *sqlx.DB) *PostgresKV {
	return &PostgresKV{db: db}
}

// EnsureSchema creates the backing table when it does not exist yet.
func (s *PostgresKV) EnsureSchema(ctx context.Context) error {
	const ddl = `CREATE TABLE IF NOT EXISTS kv_entries (
		item_key TEXT PRIMARY KEY,
		item_value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure kv schema: %w", err)
	}
	return nil
}

// GetItem fetches the value stored under key.
func (s *PostgresKV) GetItem(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT item_value FROM kv_entries WHERE item_key = $1`
	var value string
	if err := s.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get item %s: %w", key, err)
	}
	return value, true, nil
}

// SetItem upserts the value stored under key.
func (s *PostgresKV) SetItem(ctx context.Context, key, value string) error {
	const query = `INSERT INTO kv_entries (item_key, item_value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (item_key) DO UPDATE SET item_value = EXCLUDED.item_value, updated_at = now()`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set item %s: %w", key, err)
	}
	return nil
}

// RemoveItem deletes the key.
func (s *PostgresKV) RemoveItem(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_entries WHERE item_key = $1`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("remove item %s: %w", key, err)
	}
	return nil
}
