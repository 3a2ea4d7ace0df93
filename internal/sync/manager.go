package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stacklok/readmode-server/internal/catalog"
	"github.com/stacklok/readmode-server/internal/config"
	"github.com/stacklok/readmode-server/internal/filtering"
	"github.com/stacklok/readmode-server/internal/sources"
	"github.com/stacklok/readmode-server/internal/status"
	"github.com/stacklok/readmode-server/internal/sync/writer"
)

// Result contains the result of a successful sync operation
type Result struct {
	Hash          string
	FilterHash    string
	PlaylistCount int
	VideoCount    int
}

// Condition reasons carried by sync errors
const (
	conditionReasonHandlerCreationFailed = "HandlerCreationFailed"
	conditionReasonValidationFailed      = "ValidationFailed"
	conditionReasonFetchFailed           = "FetchFailed"
	conditionReasonFilterFailed          = "FilterFailed"
	conditionReasonStorageFailed         = "StorageFailed"
)

// Condition types carried by sync errors
const (
	// ConditionSourceAvailable indicates whether the source is reachable
	ConditionSourceAvailable = "SourceAvailable"

	// ConditionDataValid indicates whether the fetched catalog is valid
	ConditionDataValid = "DataValid"

	// ConditionSyncSuccessful indicates whether the last sync succeeded
	ConditionSyncSuccessful = "SyncSuccessful"
)

// Error is a sync failure with the condition it affects
type Error struct {
	Err             error
	Message         string
	ConditionType   string
	ConditionReason string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Manager decides when to sync the catalog and performs the sync
//
//go:generate mockgen -destination=mocks/mock_manager.go -package=mocks github.com/stacklok/readmode-server/internal/sync Manager
type Manager interface {
	// ShouldSync decides whether a sync is needed given the current status
	ShouldSync(ctx context.Context, cfg *config.Config, syncStatus *status.SyncStatus, manualSyncRequested bool) Reason

	// PerformSync fetches, filters, orders and stores the catalog
	PerformSync(ctx context.Context, cfg *config.Config) (*Result, *Error)
}

// DataChangeDetector detects changes in source data
type DataChangeDetector interface {
	IsDataChanged(ctx context.Context, cfg *config.Config, syncStatus *status.SyncStatus) (bool, error)
}

// AutomaticSyncChecker handles interval based sync timing
type AutomaticSyncChecker interface {
	// IsIntervalSyncNeeded returns (syncNeeded, nextSyncTime, error)
	IsIntervalSyncNeeded(cfg *config.Config, syncStatus *status.SyncStatus) (bool, time.Time, error)
}

type defaultSyncManager struct {
	sourceHandlerFactory sources.SourceHandlerFactory
	syncWriter           writer.SyncWriter
	filterService        filtering.FilterService
	dataChangeDetector   DataChangeDetector
	automaticSyncChecker AutomaticSyncChecker
	now                  func() time.Time
}

// NewDefaultSyncManager creates a Manager reading through the handler
// factory and writing to syncWriter
func NewDefaultSyncManager(factory sources.SourceHandlerFactory, syncWriter writer.SyncWriter) Manager {
	return &defaultSyncManager{
		sourceHandlerFactory: factory,
		syncWriter:           syncWriter,
		filterService:        filtering.NewDefaultFilterService(),
		dataChangeDetector:   NewDataChangeDetector(factory),
		automaticSyncChecker: &DefaultAutomaticSyncChecker{},
		now:                  time.Now,
	}
}

// ShouldSync decides whether to sync. A catalog that was never synced, whose
// last sync failed, or that is missing from the store always syncs, as does a
// changed filter. Otherwise an elapsed interval or a manual request syncs
// only when the source hash changed.
func (s *defaultSyncManager) ShouldSync(
	ctx context.Context,
	cfg *config.Config,
	syncStatus *status.SyncStatus,
	manualSyncRequested bool,
) Reason {
	if syncStatus != nil && syncStatus.Phase == status.SyncPhaseSyncing {
		return ReasonAlreadyInProgress
	}

	if s.isSyncNeededForState(cfg, syncStatus) {
		return ReasonCatalogNotReady
	}

	if s.isFilterChanged(ctx, cfg, syncStatus) {
		return ReasonFilterChanged
	}

	intervalElapsed, _, err := s.automaticSyncChecker.IsIntervalSyncNeeded(cfg, syncStatus)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to determine if sync interval has elapsed", "error", err)
		return ReasonErrorCheckingSyncNeed
	}

	if !intervalElapsed && !manualSyncRequested {
		if cfg.SyncPolicy != nil && cfg.SyncPolicy.Interval != "" {
			return ReasonUpToDateWithPolicy
		}
		return ReasonUpToDateNoPolicy
	}

	dataChanged, err := s.dataChangeDetector.IsDataChanged(ctx, cfg, syncStatus)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to determine if source data has changed", "error", err)
		return ReasonErrorCheckingChanges
	}

	slog.DebugContext(ctx, "Checked source data changes",
		"data_changed", dataChanged,
		"interval_elapsed", intervalElapsed,
		"manual", manualSyncRequested)

	switch {
	case dataChanged && manualSyncRequested:
		return ReasonManualWithChanges
	case dataChanged:
		return ReasonSourceDataChanged
	case manualSyncRequested:
		return ReasonManualNoChanges
	default:
		return ReasonUpToDateWithPolicy
	}
}

func (s *defaultSyncManager) isSyncNeededForState(cfg *config.Config, syncStatus *status.SyncStatus) bool {
	if syncStatus == nil || syncStatus.Phase != status.SyncPhaseComplete {
		return true
	}
	return !s.syncWriter.Has(cfg.GetCatalogName())
}

// isFilterChanged compares the configured filter with the one applied by
// the last successful sync. A status without a filter hash counts as unchanged.
func (*defaultSyncManager) isFilterChanged(ctx context.Context, cfg *config.Config, syncStatus *status.SyncStatus) bool {
	if syncStatus == nil || syncStatus.LastAppliedFilterHash == "" {
		return false
	}

	current, err := FilterHash(cfg.Filter)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to hash filter configuration", "error", err)
		return false
	}
	return current != syncStatus.LastAppliedFilterHash
}

// PerformSync runs a complete sync of the configured catalog
func (s *defaultSyncManager) PerformSync(ctx context.Context, cfg *config.Config) (*Result, *Error) {
	fetchResult, syncErr := s.fetchCatalog(ctx, cfg)
	if syncErr != nil {
		return nil, syncErr
	}

	cat, syncErr := s.applyFilteringIfConfigured(ctx, cfg, fetchResult.Catalog)
	if syncErr != nil {
		return nil, syncErr
	}

	catalog.SortPlaylists(cat.Playlists)
	if cat.LastUpdated == "" {
		cat.LastUpdated = s.now().UTC().Format(time.RFC3339)
	}
	if err := cat.Validate(); err != nil {
		return nil, &Error{
			Err:             err,
			Message:         fmt.Sprintf("Catalog validation failed: %v", err),
			ConditionType:   ConditionDataValid,
			ConditionReason: conditionReasonValidationFailed,
		}
	}

	catalogName := cfg.GetCatalogName()
	if err := s.syncWriter.Store(ctx, catalogName, cat); err != nil {
		slog.ErrorContext(ctx, "Failed to store catalog", "catalog", catalogName, "error", err)
		return nil, &Error{
			Err:             err,
			Message:         fmt.Sprintf("Storage failed: %v", err),
			ConditionType:   ConditionSyncSuccessful,
			ConditionReason: conditionReasonStorageFailed,
		}
	}

	filterHash, err := FilterHash(cfg.Filter)
	if err != nil {
		slog.WarnContext(ctx, "Failed to hash filter configuration", "error", err)
	}

	slog.InfoContext(ctx, "Catalog stored",
		"catalog", catalogName,
		"playlists", len(cat.Playlists),
		"videos", len(cat.Videos),
		"hash", shortHash(fetchResult.Hash))

	return &Result{
		Hash:          fetchResult.Hash,
		FilterHash:    filterHash,
		PlaylistCount: len(cat.Playlists),
		VideoCount:    len(cat.Videos),
	}, nil
}

func (s *defaultSyncManager) fetchCatalog(ctx context.Context, cfg *config.Config) (*sources.FetchResult, *Error) {
	handler, err := s.sourceHandlerFactory.CreateHandler(cfg.Source.GetType())
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create source handler", "error", err)
		return nil, &Error{
			Err:             err,
			Message:         fmt.Sprintf("Failed to create source handler: %v", err),
			ConditionType:   ConditionSourceAvailable,
			ConditionReason: conditionReasonHandlerCreationFailed,
		}
	}

	if err := handler.Validate(&cfg.Source); err != nil {
		slog.ErrorContext(ctx, "Source validation failed", "error", err)
		return nil, &Error{
			Err:             err,
			Message:         fmt.Sprintf("Source validation failed: %v", err),
			ConditionType:   ConditionSourceAvailable,
			ConditionReason: conditionReasonValidationFailed,
		}
	}

	fetchResult, err := handler.FetchCatalog(ctx, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "Fetch operation failed", "error", err)
		return nil, &Error{
			Err:             err,
			Message:         fmt.Sprintf("Fetch failed: %v", err),
			ConditionType:   ConditionSyncSuccessful,
			ConditionReason: conditionReasonFetchFailed,
		}
	}

	slog.InfoContext(ctx, "Catalog fetched from source",
		"source", cfg.Source.GetType(),
		"playlists", fetchResult.PlaylistCount,
		"videos", fetchResult.VideoCount,
		"format", fetchResult.Format,
		"hash", shortHash(fetchResult.Hash))
	return fetchResult, nil
}

func (s *defaultSyncManager) applyFilteringIfConfigured(
	ctx context.Context, cfg *config.Config, cat *catalog.Catalog,
) (*catalog.Catalog, *Error) {
	if cfg.Filter == nil {
		slog.DebugContext(ctx, "No source filter configured")
		return cat, nil
	}

	filtered, err := s.filterService.ApplyFilters(ctx, cat, cfg.Filter)
	if err != nil {
		slog.ErrorContext(ctx, "Catalog filtering failed", "error", err)
		return nil, &Error{
			Err:             err,
			Message:         fmt.Sprintf("Filtering failed: %v", err),
			ConditionType:   ConditionSyncSuccessful,
			ConditionReason: conditionReasonFilterFailed,
		}
	}
	return filtered, nil
}
