// Package coordinator runs catalog synchronization in the background.
//
// It sits on top of sync.Manager and handles scheduling, lifecycle and the
// persisted sync status:
//
//   - an initial sync check on startup
//   - periodic checks at the configured sync interval plus a small random delay
//   - a Syncing phase set atomically through state.CatalogStateService, so
//     overlapping checks never run two syncs
//   - a final status written whatever the sync outcome
//   - sync duration and catalog size metrics when configured
//
// # Usage
//
//	syncManager := sync.NewDefaultSyncManager(sources.NewSourceHandlerFactory(), store)
//	stateService := state.NewFileStateService(status.NewFileStatusPersistence("./data"))
//
//	coord := coordinator.New(syncManager, stateService, cfg,
//	    coordinator.WithSyncMetrics(syncMetrics))
//
//	go func() {
//	    if err := coord.Start(ctx); err != nil {
//	        slog.Error("Coordinator failed", "error", err)
//	    }
//	}()
//	defer coord.Stop()
//
// SyncOnce runs a single manual check without the loop and is what the
// sync command uses.
package coordinator
