package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory KeyedStore implementation backed by a map.
// A RWMutex guards each individual operation; it does not make multi-step
// caller sequences atomic.
type MemoryStore[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// Statically verify that MemoryStore satisfies the KeyedStore interface.
var _ KeyedStore[string, any] = (*MemoryStore[string, any])(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore[K comparable, V any]() *MemoryStore[K, V] {
	return &MemoryStore[K, V]{
		entries: make(map[K]V),
	}
}

// Add inserts a value under the given key, overwriting any existing entry.
func (s *MemoryStore[K, V]) Add(ctx context.Context, key K, value V) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
	return nil
}

// Get retrieves the value stored under the given key.
func (s *MemoryStore[K, V]) Get(ctx context.Context, key K) (V, error) {
	var zero V
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return zero, ErrNotFound
	}
	return value, nil
}

// GetAll returns a copy of all stored values in unspecified order.
func (s *MemoryStore[K, V]) GetAll(ctx context.Context) ([]V, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make([]V, 0, len(s.entries))
	for _, value := range s.entries {
		values = append(values, value)
	}
	return values, nil
}

// Update replaces the value stored under an existing key.
func (s *MemoryStore[K, V]) Update(ctx context.Context, key K, value V) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return ErrUpdateFailed
	}
	s.entries[key] = value
	return nil
}

// Delete removes the value stored under the given key.
// Deleting an absent key is a no-op.
func (s *MemoryStore[K, V]) Delete(ctx context.Context, key K) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Len reports the number of stored entries.
func (s *MemoryStore[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
