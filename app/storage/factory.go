package storage

import "fmt"

// Supported backend names.
const (
	BackendSQLite = "sqlite"
	BackendFS     = "fs"
	BackendMemory = "memory"
)

// NewStore creates a Store for the configured backend. path is the
// database file for sqlite and the base directory for fs; memory ignores
// it.
func NewStore(backend, path string) (Store, error) {
	switch backend {
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendFS:
		return NewFSStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
