package store

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store. Nothing survives the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
	sets    int
	setErr  error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// Get retrieves the value stored under key.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	return value, ok, nil
}

// Set stores value under key. It fails with the error passed to FailSets, if any.
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.setErr != nil {
		return s.setErr
	}
	s.entries[key] = value
	s.sets++
	return nil
}

// Remove deletes key.
func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

// FailSets makes every subsequent Set return err. A nil err restores normal behavior.
func (s *MemoryStore) FailSets(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErr = err
}

// SetCount returns the number of successful Set calls.
func (s *MemoryStore) SetCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sets
}
