// Package memory provides an in-memory document store.
package memory

import (
	"context"
	"sync"

	"statepad/internal/document"
)

// Ensure Store implements the interface.
var _ document.Store = (*Store)(nil)

// Store is a map-backed document.Store. Contents are lost when the
// process exits.
type Store struct {
	mu   sync.RWMutex
	docs map[string]string
}

// NewStore creates an empty store, optionally seeded with docs.
func NewStore(seed map[string]string) *Store {
	docs := make(map[string]string, len(seed))
	for k, v := range seed {
		docs[k] = v
	}
	return &Store{docs: docs}
}

// Get returns the content stored under name.
func (s *Store) Get(_ context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.docs[name]
	if !ok {
		return "", document.ErrNotFound
	}
	return content, nil
}

// Set stores or replaces the content under name.
func (s *Store) Set(_ context.Context, name, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = content
	return nil
}

// List returns all stored names in no particular order.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	return names, nil
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
