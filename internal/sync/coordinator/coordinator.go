package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stacklok/readmode-server/internal/config"
	"github.com/stacklok/readmode-server/internal/status"
	pkgsync "github.com/stacklok/readmode-server/internal/sync"
	"github.com/stacklok/readmode-server/internal/sync/state"
	"github.com/stacklok/readmode-server/internal/telemetry"
)

// Coordinator manages background synchronization of the catalog
type Coordinator interface {
	// Start begins background sync coordination.
	// Blocks until the context is cancelled or Stop is called.
	Start(ctx context.Context) error

	// Stop gracefully stops the coordinator
	Stop() error

	// SyncOnce runs a single manual sync check and returns the resulting status
	SyncOnce(ctx context.Context) (*status.SyncStatus, error)
}

// defaultCoordinator is the default implementation of Coordinator
type defaultCoordinator struct {
	manager pkgsync.Manager
	config  *config.Config

	// Lifecycle management
	cancelFunc context.CancelFunc
	done       chan struct{}

	statusSvc state.CatalogStateService

	syncMetrics    *telemetry.SyncMetrics
	catalogMetrics *telemetry.CatalogMetrics

	// intervalFn computes each polling interval from the base interval
	intervalFn func(time.Duration) time.Duration
}

// Option is a function that configures the coordinator
type Option func(*defaultCoordinator)

// WithSyncMetrics sets the sync metrics for the coordinator
func WithSyncMetrics(metrics *telemetry.SyncMetrics) Option {
	return func(c *defaultCoordinator) {
		c.syncMetrics = metrics
	}
}

// WithCatalogMetrics sets the catalog size metrics for the coordinator
func WithCatalogMetrics(metrics *telemetry.CatalogMetrics) Option {
	return func(c *defaultCoordinator) {
		c.catalogMetrics = metrics
	}
}

// New creates a new coordinator with injected dependencies
func New(
	manager pkgsync.Manager,
	statusSvc state.CatalogStateService,
	cfg *config.Config,
	opts ...Option,
) Coordinator {
	c := &defaultCoordinator{
		manager:    manager,
		statusSvc:  statusSvc,
		config:     cfg,
		done:       make(chan struct{}),
		intervalFn: calculatePollingInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start begins background sync coordination
func (c *defaultCoordinator) Start(ctx context.Context) error {
	catalogName := c.config.GetCatalogName()
	slog.InfoContext(ctx, "Starting background sync coordinator", "catalog", catalogName)

	coordCtx, cancel := context.WithCancel(ctx)
	c.cancelFunc = cancel
	defer func() {
		close(c.done)
		slog.Info("Background sync coordinator shutting down")
	}()

	if err := c.statusSvc.Initialize(coordCtx, catalogName); err != nil {
		return fmt.Errorf("failed to initialize catalog sync status: %w", err)
	}

	baseInterval := getSyncInterval(c.config)
	pollingInterval := c.intervalFn(baseInterval)
	slog.InfoContext(ctx, "Configured coordinator sync interval",
		"base_interval", baseInterval,
		"actual_interval", pollingInterval)

	ticker := time.NewTicker(pollingInterval)
	defer ticker.Stop()

	// Initial check, so a fresh server syncs without waiting a full interval
	c.checkCatalogSync(coordCtx, false)

	for {
		select {
		case <-ticker.C:
			c.checkCatalogSync(coordCtx, false)
			ticker.Reset(c.intervalFn(baseInterval))
		case <-coordCtx.Done():
			slog.Info("Sync coordinator stopping")
			return nil
		}
	}
}

// Stop gracefully stops the coordinator
func (c *defaultCoordinator) Stop() error {
	if c.cancelFunc != nil {
		slog.Info("Stopping sync coordinator")
		c.cancelFunc()
		<-c.done
	}
	return nil
}

// SyncOnce initializes the catalog status and runs one manual sync check
func (c *defaultCoordinator) SyncOnce(ctx context.Context) (*status.SyncStatus, error) {
	catalogName := c.config.GetCatalogName()
	if err := c.statusSvc.Initialize(ctx, catalogName); err != nil {
		return nil, fmt.Errorf("failed to initialize catalog sync status: %w", err)
	}

	c.checkCatalogSync(ctx, true)

	syncStatus, err := c.statusSvc.GetSyncStatus(ctx, catalogName)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog sync status: %w", err)
	}
	return syncStatus, nil
}
