package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aliskhannn/git-tutor/internal/repository"
	"github.com/aliskhannn/git-tutor/internal/storage"
)

const kvSchema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// KV is a key-value store backed by a single PostgreSQL table.
type KV struct {
	db *pgxpool.Pool
	tx *Transactor
}

// NewKV creates the kv_store table if needed and returns a KV over it.
func NewKV(ctx context.Context, db *pgxpool.Pool) (*KV, error) {
	if _, err := db.Exec(ctx, kvSchema); err != nil {
		return nil, fmt.Errorf("ensure kv schema: %w", err)
	}

	return &KV{db: db, tx: NewTransactor(db)}, nil
}

// Get returns the value stored under key or storage.ErrNotFound.
func (r *KV) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", storage.ErrNotFound
		}

		return "", fmt.Errorf("get: %w", err)
	}

	return value, nil
}

const upsertQuery = `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key)
	DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at
`

// Set creates or replaces the value stored under key.
func (r *KV) Set(ctx context.Context, key, value string) error {
	_, err := r.db.Exec(ctx, upsertQuery, key, value)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}

	return nil
}

// SetMany writes all pairs in one transaction.
func (r *KV) SetMany(ctx context.Context, pairs []repository.KeyValue) error {
	err := r.tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, p := range pairs {
			if _, err := tx.Exec(ctx, upsertQuery, p.Key, p.Value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("set many: %w", err)
	}

	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *KV) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_store WHERE key = $1`

	_, err := r.db.Exec(ctx, query, key)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}
