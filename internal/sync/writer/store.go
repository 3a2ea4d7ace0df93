package writer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/stacklok/readmode-server/internal/catalog"
)

// SnapshotFileName is the file a stored catalog is written to inside
// <snapshotDir>/<catalogName>/
const SnapshotFileName = "catalog.json"

// CatalogStore keeps synced catalogs in memory. With a snapshot directory
// every stored catalog is also written to disk, so a restart can serve the
// last synced data before the first sync completes.
type CatalogStore struct {
	snapshotDir string

	mu       sync.RWMutex
	catalogs map[string]*catalog.Catalog
}

var (
	_ SyncWriter    = (*CatalogStore)(nil)
	_ CatalogReader = (*CatalogStore)(nil)
)

// StoreOption configures a CatalogStore
type StoreOption func(*CatalogStore)

// WithSnapshotDir enables on-disk snapshots under dir
func WithSnapshotDir(dir string) StoreOption {
	return func(s *CatalogStore) {
		s.snapshotDir = dir
	}
}

// NewCatalogStore creates an empty catalog store
func NewCatalogStore(opts ...StoreOption) *CatalogStore {
	s := &CatalogStore{
		catalogs: make(map[string]*catalog.Catalog),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store replaces the catalog under catalogName and writes its snapshot
func (s *CatalogStore) Store(_ context.Context, catalogName string, cat *catalog.Catalog) error {
	if cat == nil {
		return fmt.Errorf("catalog cannot be nil")
	}

	if s.snapshotDir != "" {
		if err := s.writeSnapshot(catalogName, cat); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.catalogs[catalogName] = cat
	s.mu.Unlock()
	return nil
}

// Has reports whether a catalog is stored under catalogName
func (s *CatalogStore) Has(catalogName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.catalogs[catalogName]
	return ok
}

// Get returns the catalog stored under catalogName
func (s *CatalogStore) Get(_ context.Context, catalogName string) (*catalog.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cat, ok := s.catalogs[catalogName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, catalogName)
	}
	return cat, nil
}

// LoadSnapshot restores the snapshot of catalogName. A missing snapshot is
// not an error; an unreadable or invalid one is logged and skipped.
func (s *CatalogStore) LoadSnapshot(ctx context.Context, catalogName string) bool {
	if s.snapshotDir == "" {
		return false
	}

	path := s.snapshotPath(catalogName)
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the configured data directory
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.WarnContext(ctx, "Failed to read catalog snapshot", "path", path, "error", err)
		}
		return false
	}

	var cat catalog.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		slog.WarnContext(ctx, "Discarding corrupt catalog snapshot", "path", path, "error", err)
		return false
	}
	if err := cat.Validate(); err != nil {
		slog.WarnContext(ctx, "Discarding invalid catalog snapshot", "path", path, "error", err)
		return false
	}

	s.mu.Lock()
	s.catalogs[catalogName] = &cat
	s.mu.Unlock()

	slog.InfoContext(ctx, "Loaded catalog snapshot",
		"catalog", catalogName,
		"playlists", len(cat.Playlists),
		"videos", len(cat.Videos))
	return true
}

func (s *CatalogStore) snapshotPath(catalogName string) string {
	return filepath.Join(s.snapshotDir, catalogName, SnapshotFileName)
}

func (s *CatalogStore) writeSnapshot(catalogName string, cat *catalog.Catalog) error {
	path := s.snapshotPath(catalogName)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary snapshot: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename snapshot: %w", err)
	}
	return nil
}
