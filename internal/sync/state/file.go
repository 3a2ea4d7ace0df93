package state

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/stacklok/readmode-server/internal/status"
)

const (
	messageNoPreviousStatus = "No previous sync status found"
	messageInterrupted      = "Previous sync was interrupted"
)

type fileStateService struct {
	statusPersistence status.StatusPersistence

	mu             sync.RWMutex
	cachedStatuses map[string]*status.SyncStatus
}

// NewFileStateService creates a state service caching statuses in memory
// and writing them through statusPersistence
func NewFileStateService(statusPersistence status.StatusPersistence) CatalogStateService {
	return &fileStateService{
		statusPersistence: statusPersistence,
		cachedStatuses:    make(map[string]*status.SyncStatus),
	}
}

func (f *fileStateService) Initialize(ctx context.Context, catalogName string) error {
	syncStatus, err := f.statusPersistence.LoadStatus(ctx, catalogName)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load sync status, initializing with defaults",
			"catalog", catalogName, "error", err)
		syncStatus = &status.SyncStatus{}
	}

	// This assumes a single server process owns the data directory.
	switch {
	case syncStatus.Phase == "" && syncStatus.LastSyncTime == nil:
		slog.InfoContext(ctx, "No previous sync status found", "catalog", catalogName)
		syncStatus.Phase = status.SyncPhaseFailed
		syncStatus.Message = messageNoPreviousStatus
		f.persistQuietly(ctx, catalogName, syncStatus)
	case syncStatus.Phase == status.SyncPhaseSyncing:
		slog.WarnContext(ctx, "Previous sync was interrupted, resetting to Failed", "catalog", catalogName)
		syncStatus.Phase = status.SyncPhaseFailed
		syncStatus.Message = messageInterrupted
		f.persistQuietly(ctx, catalogName, syncStatus)
	}

	if syncStatus.LastSyncTime != nil {
		slog.InfoContext(ctx, "Loaded sync status",
			"catalog", catalogName,
			"phase", syncStatus.Phase,
			"last_sync", syncStatus.LastSyncTime.Format(time.RFC3339),
			"playlists", syncStatus.PlaylistCount)
	}

	f.mu.Lock()
	f.cachedStatuses[catalogName] = syncStatus
	f.mu.Unlock()
	return nil
}

func (f *fileStateService) GetSyncStatus(_ context.Context, catalogName string) (*status.SyncStatus, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	syncStatus, exists := f.cachedStatuses[catalogName]
	if !exists || syncStatus == nil {
		return nil, nil
	}
	statusCopy := *syncStatus
	return &statusCopy, nil
}

func (f *fileStateService) UpdateStatusAtomically(
	ctx context.Context,
	catalogName string,
	testAndUpdateFn func(syncStatus *status.SyncStatus) bool,
) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, exists := f.cachedStatuses[catalogName]
	if !exists || current == nil {
		return false, fmt.Errorf("sync status for catalog %s not found", catalogName)
	}

	// Work on a copy so a failed save leaves the cache untouched.
	updated := *current
	if !testAndUpdateFn(&updated) {
		return false, nil
	}
	if err := f.statusPersistence.SaveStatus(ctx, catalogName, &updated); err != nil {
		return false, err
	}
	f.cachedStatuses[catalogName] = &updated
	return true, nil
}

func (f *fileStateService) UpdateSyncStatus(ctx context.Context, catalogName string, syncStatus *status.SyncStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.statusPersistence.SaveStatus(ctx, catalogName, syncStatus); err != nil {
		return err
	}
	statusCopy := *syncStatus
	f.cachedStatuses[catalogName] = &statusCopy
	return nil
}

func (f *fileStateService) persistQuietly(ctx context.Context, catalogName string, syncStatus *status.SyncStatus) {
	if err := f.statusPersistence.SaveStatus(ctx, catalogName, syncStatus); err != nil {
		slog.WarnContext(ctx, "Failed to persist sync status", "catalog", catalogName, "error", err)
	}
}
