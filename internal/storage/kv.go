package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by key-value stores when a key is absent.
var ErrNotFound = errors.New("key not found")

// MemoryKV is a key-value store held in process memory.
// Two stores built over the same MemoryKV share their data.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		data: make(map[string]string),
	}
}

// Get returns the value stored under key or ErrNotFound.
func (s *MemoryKV) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key.
func (s *MemoryKV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *MemoryKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
