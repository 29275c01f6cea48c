// Package memstore provides an in-memory object store implementation
// for testing.
package memstore

import (
	"context"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/treepress/treepress/internal/objstore"
)

// Compile-time check that Store implements objstore.Store.
var _ objstore.Store = (*Store)(nil)

// Store is an in-memory object store for testing.
type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		objects: make(map[string][]byte),
	}
}

// SetObject sets the data for an object (for test setup).
// The data is copied to prevent caller mutations from affecting the store.
func (s *Store) SetObject(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	s.objects[key] = copied
}

// Object returns the stored data for a key (for test assertions).
func (s *Store) Object(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}

// Upload reads the local file into memory under the given key.
func (s *Store) Upload(ctx context.Context, localPath, key string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return objstore.ErrTransferFailed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

// Download writes the stored object to the local file.
func (s *Store) Download(ctx context.Context, localPath, key string) error {
	s.mu.RLock()
	data, ok := s.objects[key]
	s.mu.RUnlock()

	if !ok {
		return objstore.ErrNotFound
	}
	if err := os.WriteFile(localPath, data, 0o644); err != nil {
		return objstore.ErrTransferFailed
	}
	return nil
}

// List returns the keys of all objects under the given prefix, sorted.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for key := range s.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Close is a no-op for the memory store.
func (s *Store) Close() error {
	return nil
}
