package repository

import "context"

// KV is the flat string key-value persistence the repositories are built on.
// Get returns storage.ErrNotFound for absent keys.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// KeyValue is one entry of a batch write.
type KeyValue struct {
	Key   string
	Value string
}

// BatchKV is implemented by backends that can apply several writes
// atomically. Repositories use it when available.
type BatchKV interface {
	SetMany(ctx context.Context, pairs []KeyValue) error
}
