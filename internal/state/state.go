// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package state defines the durable key-value port behind the selection
// manager. The interface is deliberately small — Get, Set, Close — so the
// session logic is testable against an in-memory double while production
// runs on the BadgerDB implementation in the badgerstore subpackage.
package state

import "sync"

// KV is the durable key-value storage port. A missing key is not an error:
// Get reports presence through its second return value.
type KV interface {
	// Get returns the value stored under key and whether it exists.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, overwriting any prior value.
	Set(key string, value []byte) error

	// Close releases the backing store.
	Close() error
}

// Memory is a map-backed KV for tests and for running without persistence.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get implements KV.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set implements KV.
func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}

// Close implements KV.
func (m *Memory) Close() error { return nil }
