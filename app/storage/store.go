// Package storage implements the on-device cache: a small key-value
// boundary (string keys mapping to JSON-encoded blobs) with SQLite,
// filesystem and in-memory backends, plus the typed Cache wrapper over the
// four logical records the app persists.
package storage

import "context"

// Store is the key-value persistence boundary. A missing key is reported
// through the bool, not an error.
type Store interface {
	// Get returns the raw value for key, and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the raw value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// MultiRemove deletes all given keys.
	MultiRemove(ctx context.Context, keys []string) error

	// Close releases backend resources.
	Close() error
}
