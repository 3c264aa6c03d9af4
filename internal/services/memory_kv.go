package services

import (
	"context"
	"sync"
)

// MemoryKeyValueStore keeps values in process memory. Useful for tests and for
// running without a database.
type MemoryKeyValueStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{values: make(map[string][]byte)}
}

func (store *MemoryKeyValueStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	value, ok := store.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (store *MemoryKeyValueStore) Put(_ context.Context, key string, value []byte) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.values[key] = append([]byte(nil), value...)
	return nil
}
