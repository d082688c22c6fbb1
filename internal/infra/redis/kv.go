package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/aliskhannn/git-tutor/internal/storage"
)

// KV is a key-value store on Redis. Every key is namespaced with prefix so
// several tutors can share one database.
type KV struct {
	rdb    goredis.Cmdable
	prefix string
}

// NewKV creates a KV over rdb.
func NewKV(rdb goredis.Cmdable, prefix string) *KV {
	return &KV{rdb: rdb, prefix: prefix}
}

func (r *KV) key(k string) string {
	return r.prefix + k
}

// Get returns the value stored under key or storage.ErrNotFound.
func (r *KV) Get(ctx context.Context, key string) (string, error) {
	v, err := r.rdb.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("get: %w", err)
	}

	return v, nil
}

// Set stores value under key without expiry.
func (r *KV) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("set: %w", err)
	}

	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *KV) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}
