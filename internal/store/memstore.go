package store

import (
	"context"
	"sync"
)

// MemStore is an in-memory KV store. It backs throwaway sessions and tests.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]map[string]string)}
}

// Get returns the value for a key, or ErrNotFound.
func (m *MemStore) Get(_ context.Context, profile, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if values, ok := m.data[profile]; ok {
		if value, ok := values[key]; ok {
			return value, nil
		}
	}
	return "", ErrNotFound
}

// Put stores a value under a key.
func (m *MemStore) Put(_ context.Context, profile, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data[profile] == nil {
		m.data[profile] = make(map[string]string)
	}
	m.data[profile][key] = value
	return nil
}
