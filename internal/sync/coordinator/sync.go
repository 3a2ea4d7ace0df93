package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stacklok/readmode-server/internal/status"
	pkgsync "github.com/stacklok/readmode-server/internal/sync"
)

// checkCatalogSync moves the status to Syncing when a sync is needed and then
// runs it. The decision and the phase change happen under the state lock, so
// a second check cannot start a concurrent sync.
func (c *defaultCoordinator) checkCatalogSync(ctx context.Context, manual bool) {
	catalogName := c.config.GetCatalogName()

	var reason pkgsync.Reason
	started, err := c.statusSvc.UpdateStatusAtomically(ctx, catalogName, func(syncStatus *status.SyncStatus) bool {
		reason = c.manager.ShouldSync(ctx, c.config, syncStatus, manual)
		if !reason.ShouldSync() {
			return false
		}

		now := time.Now()
		syncStatus.Phase = status.SyncPhaseSyncing
		syncStatus.Message = "Sync in progress"
		syncStatus.LastAttempt = &now
		syncStatus.AttemptCount++
		return true
	})
	if err != nil {
		slog.ErrorContext(ctx, "Error checking catalog sync", "catalog", catalogName, "error", err)
		return
	}

	if !started {
		slog.DebugContext(ctx, "Catalog does not need sync",
			"catalog", catalogName,
			"reason", reason.String())
		return
	}

	slog.InfoContext(ctx, "Catalog sync needed", "catalog", catalogName, "reason", reason.String())
	c.performCatalogSync(ctx)
}

// performCatalogSync executes the sync and writes the final status
func (c *defaultCoordinator) performCatalogSync(ctx context.Context) {
	catalogName := c.config.GetCatalogName()
	startTime := time.Now()

	// Start from the current status so a failure keeps the last good sync
	// data. The deferred update always runs, and the default message covers
	// an unexpected exit.
	syncStatus := &status.SyncStatus{}
	if current, err := c.statusSvc.GetSyncStatus(ctx, catalogName); err == nil && current != nil {
		syncStatus = current
	}
	syncStatus.Phase = status.SyncPhaseFailed
	syncStatus.Message = fmt.Sprintf("Unexpected failure while syncing catalog %s", catalogName)
	defer func() {
		if err := c.statusSvc.UpdateSyncStatus(ctx, catalogName, syncStatus); err != nil {
			slog.ErrorContext(ctx, "Error updating sync status",
				"catalog", catalogName,
				"error", err)
		}
	}()

	slog.InfoContext(ctx, "Starting sync operation",
		"catalog", catalogName,
		"attempt", syncStatus.AttemptCount)

	result, syncErr := c.manager.PerformSync(ctx, c.config)
	syncDuration := time.Since(startTime)

	if syncErr != nil {
		syncStatus.Phase = status.SyncPhaseFailed
		syncStatus.Message = syncErr.Message
		slog.ErrorContext(ctx, "Sync failed",
			"catalog", catalogName,
			"condition", syncErr.ConditionType,
			"reason", syncErr.ConditionReason,
			"error", syncErr.Message)
		c.syncMetrics.RecordSyncDuration(ctx, catalogName, syncDuration, false)
		return
	}

	now := time.Now()
	syncStatus.Phase = status.SyncPhaseComplete
	syncStatus.Message = "Sync completed successfully"
	syncStatus.LastSyncTime = &now
	syncStatus.LastSyncHash = result.Hash
	syncStatus.LastAppliedFilterHash = result.FilterHash
	syncStatus.PlaylistCount = result.PlaylistCount
	syncStatus.VideoCount = result.VideoCount
	syncStatus.AttemptCount = 0
	if c.config.SyncPolicy != nil {
		syncStatus.SyncSchedule = c.config.SyncPolicy.Interval
	}

	hashPreview := result.Hash
	if len(hashPreview) > 8 {
		hashPreview = hashPreview[:8]
	}
	slog.InfoContext(ctx, "Sync completed successfully",
		"catalog", catalogName,
		"playlists", result.PlaylistCount,
		"videos", result.VideoCount,
		"hash", hashPreview,
		"duration", syncDuration)

	c.syncMetrics.RecordSyncDuration(ctx, catalogName, syncDuration, true)
	c.catalogMetrics.RecordCatalogSize(ctx, catalogName, int64(result.PlaylistCount), int64(result.VideoCount))
}
