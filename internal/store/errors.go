package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entry does not exist in the store.
	ErrNotFound = errors.New("entry not found")

	// ErrUpdateFailed is returned when an update targets a key that does
	// not exist. Callers are expected to check existence first.
	ErrUpdateFailed = errors.New("update failed")
)

// IsNotFoundError checks if the error is a "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
