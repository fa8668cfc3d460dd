package store

import (
	"context"
	"sync"
)

// MemoryKV is a process-local KV. The zero value is ready to use.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV returns a MemoryKV preloaded with entries.
func NewMemoryKV(entries map[string]string) *MemoryKV {
	m := &MemoryKV{data: make(map[string]string, len(entries))}
	for k, v := range entries {
		m.data[k] = v
	}
	return m
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

var _ KV = (*MemoryKV)(nil)
