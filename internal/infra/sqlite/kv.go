// Package sqlite provides a key-value store on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // driver: sqlite

	"github.com/aliskhannn/git-tutor/internal/repository"
	"github.com/aliskhannn/git-tutor/internal/storage"
)

const driverName = "sqlite"

const defaultDSN = "file:git-tutor.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at INTEGER NOT NULL
);
`

// Open opens the database at dsn and ensures the schema exists.
// An empty dsn opens git-tutor.db in the working directory.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = defaultDSN
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	// SQLite allows a single writer at a time.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return db, nil
}

// KV is a key-value store backed by the kv_store table.
type KV struct {
	db *sql.DB
}

// NewKV returns a KV over a database opened with Open.
func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

// Get returns the value stored under key or storage.ErrNotFound.
func (r *KV) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("get: %w", err)
	}

	return value, nil
}

const upsertQuery = `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT (key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at
`

// Set creates or replaces the value stored under key.
func (r *KV) Set(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, upsertQuery, key, value, time.Now().Unix()); err != nil {
		return fmt.Errorf("set: %w", err)
	}

	return nil
}

// SetMany writes all pairs in one transaction.
func (r *KV) SetMany(ctx context.Context, pairs []repository.KeyValue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("set many: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().Unix()
	for _, p := range pairs {
		if _, err = tx.ExecContext(ctx, upsertQuery, p.Key, p.Value, now); err != nil {
			return fmt.Errorf("set many: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("set many: commit: %w", err)
	}

	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *KV) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}
