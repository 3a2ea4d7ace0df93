package app

import (
	"github.com/stacklok/readmode-server/internal/service"
	"github.com/stacklok/readmode-server/internal/sync/coordinator"
	"github.com/stacklok/readmode-server/internal/sync/writer"
)

// AppComponents groups all application components
//
//nolint:revive // This name is fine
type AppComponents struct {
	// SyncCoordinator manages background synchronization
	SyncCoordinator coordinator.Coordinator

	// CatalogService serves catalog, tag and recent requests
	CatalogService service.CatalogService

	// CatalogStore holds the synced catalog shared by sync and service
	CatalogStore *writer.CatalogStore
}
