package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// FileStore implements the Store interface with a single JSON document on disk.
// Every operation holds a file lock so separate processes sharing the file
// never interleave writes.
type FileStore struct {
	path string
	flk  *flock.Flock
	mu   sync.Mutex
}

// NewFileStore creates a file store at path, creating its directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	s := &FileStore{
		path: path,
		flk:  flock.New(path + ".lock"),
	}

	// Surface a corrupt document at open rather than on first use.
	if err := s.withLock(false, func() error {
		_, err := s.readAll()
		return err
	}); err != nil {
		return nil, err
	}

	return s, nil
}

// Get retrieves the value stored under key.
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := s.withLock(false, func() error {
		entries, err := s.readAll()
		if err != nil {
			return err
		}
		value, ok = entries[key]
		return nil
	})
	if err != nil {
		return "", false, err
	}

	return value, ok, nil
}

// Set stores value under key.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	return s.withLock(true, func() error {
		entries, err := s.readAll()
		if err != nil {
			return err
		}
		entries[key] = value
		return s.writeAll(entries)
	})
}

// Remove deletes key.
func (s *FileStore) Remove(ctx context.Context, key string) error {
	return s.withLock(true, func() error {
		entries, err := s.readAll()
		if err != nil {
			return err
		}
		if _, ok := entries[key]; !ok {
			return nil
		}
		delete(entries, key)
		return s.writeAll(entries)
	})
}

// Close releases the file lock handle.
func (s *FileStore) Close() error {
	return s.flk.Close()
}

func (s *FileStore) withLock(exclusive bool, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock := s.flk.RLock
	if exclusive {
		lock = s.flk.Lock
	}
	if err := lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", s.path, err)
	}
	defer func() { _ = s.flk.Unlock() }()

	return fn()
}

func (s *FileStore) readAll() (map[string]string, error) {
	entries := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entries, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}

	return entries, nil
}

func (s *FileStore) writeAll(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	return nil
}
