// Package storage provides the durable key-value store the persisted state
// blob is round-tripped through. All backends implement the same whole-value
// Get/Set contract; there is no incremental update path.
package storage

import (
	"context"
	"sync"
)

// KV is a generic durable key-value store. Get reports found=false for an
// absent key without error.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Memory is a map-backed KV. It is both the test backend and the fallback
// when no durable backend is reachable: operations then degrade to
// in-memory-only behavior instead of failing.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *Memory) Close() error { return nil }
