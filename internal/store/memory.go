package store

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned when a slot has never been written or was removed.
	ErrNotFound = errors.New("no value stored for key")
)

// MemoryStore is a concurrency-safe in-memory implementation of named slots.
// Values do not survive a restart.
type MemoryStore struct {
	mu sync.RWMutex

	// key: slot name, value: serialized content
	data map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

// GetItem returns the value stored under key.
func (s *MemoryStore) GetItem(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// SetItem replaces the value stored under key.
func (s *MemoryStore) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// RemoveItem deletes key. Removing a missing key is not an error.
func (s *MemoryStore) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
