// Package state manages the sync status the server persists between runs.
package state

import (
	"context"

	"github.com/stacklok/readmode-server/internal/status"
)

// CatalogStateService inspects and updates the sync status of catalogs
//
//go:generate mockgen -destination=mocks/mock_catalog_state_service.go -package=mocks github.com/stacklok/readmode-server/internal/sync/state CatalogStateService
type CatalogStateService interface {
	// Initialize loads the persisted status of the catalog, or creates a
	// default one. It is called once at startup.
	Initialize(ctx context.Context, catalogName string) error
	// GetSyncStatus returns a copy of the catalog status, or nil when the
	// catalog was never initialized.
	GetSyncStatus(ctx context.Context, catalogName string) (*status.SyncStatus, error)
	// UpdateSyncStatus replaces the catalog status.
	UpdateSyncStatus(ctx context.Context, catalogName string, syncStatus *status.SyncStatus) error
	// UpdateStatusAtomically applies testAndUpdateFn to the current status
	// under a lock and persists it when the function reports a change. The
	// returned bool is the function's result.
	UpdateStatusAtomically(
		ctx context.Context,
		catalogName string,
		testAndUpdateFn func(syncStatus *status.SyncStatus) bool,
	) (bool, error)
}
