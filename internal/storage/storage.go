package storage

import (
	"context"
	"sync"
)

// Store is synchronous string-keyed storage. Every collection the forum
// persists lives under a fixed key as one JSON-encoded value; writers
// replace the whole value, last writer wins.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns a Store backed by an in-process map. Used when
// STORAGE_DRIVER=memory and as the fixture for tests.
func NewMemory() Store {
	return &memoryStore{values: make(map[string]string)}
}

func (m *memoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryStore) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memoryStore) Close() error {
	return nil
}
