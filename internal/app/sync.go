package app

import (
	"context"
	"fmt"

	"github.com/stacklok/readmode-server/internal/app/storage"
	"github.com/stacklok/readmode-server/internal/status"
)

// RunSyncOnce performs a single sync without starting the HTTP server. The
// catalog snapshot and sync status are written to the data directory, so a
// server started later serves the result right away.
func RunSyncOnce(ctx context.Context, opts ...CatalogAppOptions) (*status.SyncStatus, error) {
	cfg, err := baseConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build base configuration: %w", err)
	}

	if cfg.storageFactory == nil {
		cfg.storageFactory, err = storage.NewStorageFactory(ctx, cfg.config, cfg.dataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage factory: %w", err)
		}
	}
	defer cfg.storageFactory.Cleanup()

	catalogStore, err := cfg.storageFactory.CreateCatalogStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog store: %w", err)
	}

	syncCoordinator, err := buildSyncComponents(ctx, cfg, catalogStore)
	if err != nil {
		return nil, fmt.Errorf("failed to build sync components: %w", err)
	}

	return syncCoordinator.SyncOnce(ctx)
}
