package store

import (
	"context"
	"sync"
)

// memoryKeyValueStore keeps values in process memory only. It is used by the
// "memory" backend and in tests.
type memoryKeyValueStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryKeyValueStore constructs an empty in-memory [KeyValueStore].
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{items: make(map[string]string)}
}

func (s *memoryKeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	return value, ok, nil
}

func (s *memoryKeyValueStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}

func (s *memoryKeyValueStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}
