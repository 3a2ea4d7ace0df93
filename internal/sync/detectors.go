package sync

import (
	"context"
	"time"

	"github.com/stacklok/readmode-server/internal/config"
	"github.com/stacklok/readmode-server/internal/sources"
	"github.com/stacklok/readmode-server/internal/status"
)

// DefaultDataChangeDetector compares the source hash with the last synced hash
type DefaultDataChangeDetector struct {
	sourceHandlerFactory sources.SourceHandlerFactory
}

// NewDataChangeDetector creates a detector using the given handler factory
func NewDataChangeDetector(factory sources.SourceHandlerFactory) *DefaultDataChangeDetector {
	return &DefaultDataChangeDetector{sourceHandlerFactory: factory}
}

// IsDataChanged reports true when there is no previous hash or the source
// hash differs from it. On error it also reports true.
func (d *DefaultDataChangeDetector) IsDataChanged(
	ctx context.Context, cfg *config.Config, syncStatus *status.SyncStatus,
) (bool, error) {
	if syncStatus == nil || syncStatus.LastSyncHash == "" {
		return true, nil
	}

	handler, err := d.sourceHandlerFactory.CreateHandler(cfg.Source.GetType())
	if err != nil {
		return true, err
	}

	currentHash, err := handler.CurrentHash(ctx, cfg)
	if err != nil {
		return true, err
	}
	return currentHash != syncStatus.LastSyncHash, nil
}

// DefaultAutomaticSyncChecker decides interval based syncs
type DefaultAutomaticSyncChecker struct {
	now func() time.Time
}

// IsIntervalSyncNeeded returns whether the sync interval has elapsed since
// the last attempt, and when the next sync is due. Without a sync policy it
// never asks for a sync and returns the zero time.
func (c *DefaultAutomaticSyncChecker) IsIntervalSyncNeeded(
	cfg *config.Config, syncStatus *status.SyncStatus,
) (bool, time.Time, error) {
	if cfg.SyncPolicy == nil || cfg.SyncPolicy.Interval == "" {
		return false, time.Time{}, nil
	}

	interval, err := time.ParseDuration(cfg.SyncPolicy.Interval)
	if err != nil {
		return false, time.Time{}, err
	}

	now := time.Now()
	if c != nil && c.now != nil {
		now = c.now()
	}

	if syncStatus == nil || syncStatus.LastAttempt == nil {
		return true, now.Add(interval), nil
	}

	next := syncStatus.LastAttempt.Add(interval)
	if !now.Before(next) {
		return true, now.Add(interval), nil
	}
	return false, next, nil
}
