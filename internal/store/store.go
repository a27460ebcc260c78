package store

import "context"

// KeyedStore defines the interface for a keyed entity container mapping an
// identifier to a value. All operations take a context because conforming
// implementations may suspend during access (e.g. a remote cache); the
// interface does not promise atomicity across multiple calls, so
// read-then-write sequences at the caller are not transactional.
type KeyedStore[K comparable, V any] interface {
	// Add inserts a value under the given key.
	// Behavior on a duplicate key is implementation-defined; callers that
	// need uniqueness must generate fresh keys.
	Add(ctx context.Context, key K, value V) error

	// Get retrieves the value stored under the given key.
	// Returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, key K) (V, error)

	// GetAll returns all stored values. Order is unspecified.
	GetAll(ctx context.Context) ([]V, error)

	// Update replaces the value stored under an existing key.
	// Returns ErrUpdateFailed if the key does not exist.
	Update(ctx context.Context, key K, value V) error

	// Delete removes the value stored under the given key.
	// Deleting an absent key is implementation-defined; callers are
	// expected to check existence first.
	Delete(ctx context.Context, key K) error
}
