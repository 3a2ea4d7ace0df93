package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/stacklok/readmode-server/internal/config"
	"github.com/stacklok/readmode-server/internal/recent"
	"github.com/stacklok/readmode-server/internal/status"
	"github.com/stacklok/readmode-server/internal/sync/state"
	"github.com/stacklok/readmode-server/internal/sync/writer"
)

// FileFactory creates components persisted on the local filesystem
type FileFactory struct {
	config  *config.Config
	dataDir string

	statusPersistence status.StatusPersistence

	mu           sync.Mutex
	catalogStore *writer.CatalogStore
	recentStores []recent.Store
}

var _ Factory = (*FileFactory)(nil)

// NewFileFactory creates a file-based storage factory, creating dataDir if needed
func NewFileFactory(cfg *config.Config, dataDir string) (*FileFactory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if dataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}

	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	slog.Info("Creating file-based storage factory", "data_dir", dataDir)

	return &FileFactory{
		config:            cfg,
		dataDir:           dataDir,
		statusPersistence: status.NewFileStatusPersistence(dataDir),
	}, nil
}

// CreateStateService creates a file-based state service
func (f *FileFactory) CreateStateService(_ context.Context) (state.CatalogStateService, error) {
	slog.Debug("Creating file-based state service")
	return state.NewFileStateService(f.statusPersistence), nil
}

// CreateCatalogStore returns the catalog store, snapshotting under the data directory
func (f *FileFactory) CreateCatalogStore(_ context.Context) (*writer.CatalogStore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.catalogStore == nil {
		slog.Debug("Creating catalog store", "snapshot_dir", f.dataDir)
		f.catalogStore = writer.NewCatalogStore(writer.WithSnapshotDir(f.dataDir))
	}
	return f.catalogStore, nil
}

// CreateRecentStore opens the configured recent store. File and badger
// stores live under recent.path, or the data directory when it is unset.
func (f *FileFactory) CreateRecentStore(_ context.Context) (recent.Store, error) {
	storageType := f.config.GetRecentStorage()
	dir := f.dataDir
	if f.config.Recent != nil && f.config.Recent.Path != "" {
		dir = f.config.Recent.Path
	}
	slog.Debug("Creating recent store", "type", storageType, "dir", dir)

	store, err := recent.NewStore(storageType, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to create recent store: %w", err)
	}

	f.mu.Lock()
	f.recentStores = append(f.recentStores, store)
	f.mu.Unlock()
	return store, nil
}

// Cleanup closes every recent store created by the factory
func (f *FileFactory) Cleanup() {
	f.mu.Lock()
	stores := f.recentStores
	f.recentStores = nil
	f.mu.Unlock()

	for _, store := range stores {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close recent store", "error", err)
		}
	}
}
