package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FSStore is a key-value backend storing one file per key under a base
// directory. Useful where SQLite is unavailable.
type FSStore struct {
	basePath string
}

// NewFSStore creates a new file system store rooted at basePath.
func NewFSStore(basePath string) (*FSStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &FSStore{basePath: basePath}, nil
}

func (s *FSStore) pathFor(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

// Get reads the value file for key.
func (s *FSStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), true, nil
}

// Set writes the value file for key.
func (s *FSStore) Set(_ context.Context, key, value string) error {
	if err := os.WriteFile(s.pathFor(key), []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Remove deletes the value file for key.
func (s *FSStore) Remove(_ context.Context, key string) error {
	if err := os.Remove(s.pathFor(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// MultiRemove deletes the value files for all given keys.
func (s *FSStore) MultiRemove(ctx context.Context, keys []string) error {
	for _, key := range keys {
		if err := s.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op; the store holds no open handles.
func (s *FSStore) Close() error {
	return nil
}
