package recent

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps the list in process memory. It is lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored list
func (s *MemoryStore) Load(_ context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries), nil
}

// Save replaces the stored list
func (s *MemoryStore) Save(_ context.Context, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = slices.Clone(entries)
	return nil
}

// Remove deletes every entry for youtubeID
func (s *MemoryStore) Remove(_ context.Context, youtubeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = Without(s.entries, youtubeID)
	return nil
}

// Close is a no-op
func (*MemoryStore) Close() error {
	return nil
}
