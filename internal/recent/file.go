package recent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// FileName is the file the list is written to inside the store directory
const FileName = StorageKey + ".json"

// FileStore keeps the list as a JSON file, replaced atomically on save
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store writing to FileName under dir
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("recent store directory is required")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create recent store directory: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, FileName)}, nil
}

// Load reads the list. A corrupt file is logged, reset and read as empty.
func (s *FileStore) Load(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save replaces the list
func (s *FileStore) Save(_ context.Context, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(entries)
}

// Remove deletes every entry for youtubeID
func (s *FileStore) Remove(ctx context.Context, youtubeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}
	return s.write(Without(entries, youtubeID))
}

// Close is a no-op
func (*FileStore) Close() error {
	return nil
}

func (s *FileStore) load(ctx context.Context) ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read recent videos: %w", err)
	}

	entries, ok := decodeEntries(ctx, data)
	if !ok {
		if err := s.write([]Entry{}); err != nil {
			slog.WarnContext(ctx, "Failed to reset recent videos file", "path", s.path, "error", err)
		}
	}
	return entries, nil
}

func (s *FileStore) write(entries []Entry) error {
	data, err := encodeEntries(entries)
	if err != nil {
		return err
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write recent videos: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to replace recent videos file: %w", err)
	}
	return nil
}

// decodeEntries parses a stored list. It reports false, with an empty list,
// when the data is not a JSON list of entries.
func decodeEntries(ctx context.Context, data []byte) ([]Entry, bool) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.WarnContext(ctx, "Discarding corrupt recent videos data", "error", err)
		return []Entry{}, false
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, true
}

func encodeEntries(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recent videos: %w", err)
	}
	return data, nil
}
