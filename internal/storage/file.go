package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKV is a key-value store persisted as a single JSON object on disk.
// Every write replaces the file through a temporary file and a rename.
type FileKV struct {
	mu   sync.RWMutex
	path string
	data map[string]string
}

// NewFileKV opens the store at path, creating parent directories as needed.
// A missing file is treated as an empty store.
func NewFileKV(path string) (*FileKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	data, err := readKVFile(path)
	if err != nil {
		return nil, err
	}

	return &FileKV{
		path: path,
		data: data,
	}, nil
}

// Path returns the file backing the store.
func (s *FileKV) Path() string {
	return s.path
}

// Get returns the value stored under key or ErrNotFound.
func (s *FileKV) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key and flushes the store to disk.
func (s *FileKV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.data[key]
	s.data[key] = value

	if err := s.flush(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return fmt.Errorf("set %q: %w", key, err)
	}

	return nil
}

// Delete removes key and flushes the store to disk.
func (s *FileKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.data[key]
	if !had {
		return nil
	}
	delete(s.data, key)

	if err := s.flush(); err != nil {
		s.data[key] = prev
		return fmt.Errorf("delete %q: %w", key, err)
	}

	return nil
}

func (s *FileKV) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func readKVFile(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	data := make(map[string]string)
	if len(raw) == 0 {
		return data, nil
	}

	if err = json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal storage file: %w", err)
	}

	return data, nil
}
