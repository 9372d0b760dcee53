package storage

import (
	"context"
	"sync"

	"kubyshka/internal/common"
)

// MemoryKV is a map-backed KV used by tests and as a scratch store.
type MemoryKV struct {
	values map[Key][]byte
	mu     sync.RWMutex
}

// NewMemoryKV creates an empty in-memory repository.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[Key][]byte)}
}

// Get returns the stored value or common.ErrNotFound.
func (m *MemoryKV) Get(_ context.Context, key Key) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a copy of value under key.
func (m *MemoryKV) Set(_ context.Context, key Key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

// Close is a no-op for the in-memory backend.
func (m *MemoryKV) Close() error {
	return nil
}
