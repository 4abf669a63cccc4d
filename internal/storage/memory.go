package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"lantern/internal/fault"
)

// MemoryStore is the reference Creator implementation used by tests and the
// demo CLI. It keeps everything in a map behind a mutex.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]StoredItem
}

var _ Creator = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]StoredItem)}
}

// Create stores the item, assigning a fresh ID when none is supplied and a
// fresh opaque Etag. A duplicate ID is a conflict fault carrying the
// correlation identifier from ctx.
func (s *MemoryStore) Create(ctx context.Context, item StoredItem) (StoredItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.Etag = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[item.ID]; exists {
		return StoredItem{}, fault.FromContext(ctx, fault.Conflict, "item already exists: "+item.ID)
	}
	s.items[item.ID] = item
	return item, nil
}

// Get returns the stored item by ID, or a not-found fault.
func (s *MemoryStore) Get(ctx context.Context, id string) (StoredItem, error) {
	s.mu.RLock()
	item, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return StoredItem{}, fault.FromContext(ctx, fault.NotFound, "no item with id "+id)
	}
	return item, nil
}

// Len reports how many items the store holds.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
