package kv

import (
	"context"
	"sync"
)

// Memory is an in-memory Store for tests. The zero value is not usable;
// call NewMemory.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	sets   int

	// GetErr and SetErr, when non-nil, are returned by every Get/Set.
	GetErr error
	SetErr error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get returns the stored value for key.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	value, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true, nil
}

// Set stores value under key.
func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SetErr != nil {
		return m.SetErr
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	m.values[key] = copied
	m.sets++
	return nil
}

// Sets returns how many successful writes have happened.
func (m *Memory) Sets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}
