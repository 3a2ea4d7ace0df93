// Package storage creates the storage-dependent components of the server as
// a family, so the sync status, synced catalogs and recent list all live
// under the same data directory.
package storage

import (
	"context"
	"fmt"

	"github.com/stacklok/readmode-server/internal/config"
	"github.com/stacklok/readmode-server/internal/recent"
	"github.com/stacklok/readmode-server/internal/sync/state"
	"github.com/stacklok/readmode-server/internal/sync/writer"
)

//go:generate mockgen -destination=mocks/mock_factory.go -package=mocks -source=factory.go Factory

// Factory creates storage-dependent components
type Factory interface {
	// CreateStateService creates the service tracking sync status
	CreateStateService(ctx context.Context) (state.CatalogStateService, error)

	// CreateCatalogStore returns the store shared by the sync writer and the
	// catalog service. Repeated calls return the same store.
	CreateCatalogStore(ctx context.Context) (*writer.CatalogStore, error)

	// CreateRecentStore creates the recently watched store selected by the
	// configuration
	CreateRecentStore(ctx context.Context) (recent.Store, error)

	// Cleanup releases resources held by the factory and the stores it created
	Cleanup()
}

// NewStorageFactory creates the storage factory for cfg rooted at dataDir
func NewStorageFactory(_ context.Context, cfg *config.Config, dataDir string) (Factory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return NewFileFactory(cfg, dataDir)
}
