package store

import (
	"context"
	"sync"

	"github.com/isoron/habit-sync/models"
)

// memoryStore keeps records in a map owned by the instance and guarded by a
// single mutex. It is meant for tests and development.
type memoryStore struct {
	mu      sync.RWMutex
	records map[string]models.SyncData
}

// NewMemoryStore returns an empty in-memory [KeyedStore].
func NewMemoryStore() KeyedStore {
	return &memoryStore{
		records: make(map[string]models.SyncData),
	}
}

func (m *memoryStore) Put(_ context.Context, key string, data models.SyncData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[key] = data
	return nil
}

func (m *memoryStore) Get(_ context.Context, key string) (models.SyncData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.records[key]
	if !ok {
		return models.SyncData{}, ErrNotFound
	}

	return data, nil
}

func (m *memoryStore) Contains(_ context.Context, key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.records[key]
	return ok
}
