package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/readmode-server/internal/config"
	"github.com/stacklok/readmode-server/internal/status"
	"github.com/stacklok/readmode-server/internal/sync"
	syncmocks "github.com/stacklok/readmode-server/internal/sync/mocks"
	"github.com/stacklok/readmode-server/internal/sync/state"
	statemocks "github.com/stacklok/readmode-server/internal/sync/state/mocks"
)

const testCatalogName = "late-night"

func testConfig() *config.Config {
	return &config.Config{
		CatalogName: testCatalogName,
		Source:      config.SourceConfig{File: &config.FileConfig{Path: "/data/catalog.json"}},
		SyncPolicy:  &config.SyncPolicyConfig{Interval: "15m"},
	}
}

// applyUpdate runs an UpdateStatusAtomically callback against current and
// mirrors what the real state service returns
func applyUpdate(current *status.SyncStatus) func(context.Context, string, func(*status.SyncStatus) bool) (bool, error) {
	return func(_ context.Context, _ string, fn func(*status.SyncStatus) bool) (bool, error) {
		return fn(current), nil
	}
}

func TestGetSyncInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		policy   *config.SyncPolicyConfig
		expected time.Duration
	}{
		{name: "nil policy returns default", expected: time.Minute},
		{name: "empty interval returns default", policy: &config.SyncPolicyConfig{}, expected: time.Minute},
		{name: "valid interval", policy: &config.SyncPolicyConfig{Interval: "5m"}, expected: 5 * time.Minute},
		{name: "invalid interval returns default", policy: &config.SyncPolicyConfig{Interval: "soon"}, expected: time.Minute},
		{name: "tiny interval is clamped", policy: &config.SyncPolicyConfig{Interval: "10ms"}, expected: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, getSyncInterval(&config.Config{SyncPolicy: tt.policy}))
		})
	}
}

func TestCalculatePollingInterval(t *testing.T) {
	t.Parallel()

	for range 100 {
		got := calculatePollingInterval(time.Minute)
		assert.GreaterOrEqual(t, got, time.Minute)
		assert.Less(t, got, time.Minute+6*time.Second)
	}

	for range 100 {
		got := calculatePollingInterval(time.Hour)
		assert.GreaterOrEqual(t, got, time.Hour)
		assert.Less(t, got, time.Hour+maxPollingJitter)
	}

	assert.Equal(t, time.Duration(5), calculatePollingInterval(5))
}

func TestCoordinator_CheckCatalogSync(t *testing.T) {
	t.Parallel()

	t.Run("sync not needed leaves status alone", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		manager := syncmocks.NewMockManager(ctrl)
		stateSvc := statemocks.NewMockCatalogStateService(ctrl)

		current := &status.SyncStatus{Phase: status.SyncPhaseComplete, Message: "Sync completed successfully"}
		stateSvc.EXPECT().UpdateStatusAtomically(gomock.Any(), testCatalogName, gomock.Any()).
			DoAndReturn(applyUpdate(current))
		manager.EXPECT().ShouldSync(gomock.Any(), gomock.Any(), current, false).
			Return(sync.ReasonUpToDateWithPolicy)

		c := New(manager, stateSvc, testConfig()).(*defaultCoordinator)
		c.checkCatalogSync(context.Background(), false)

		assert.Equal(t, status.SyncPhaseComplete, current.Phase)
		assert.Equal(t, 0, current.AttemptCount)
	})

	t.Run("successful sync records results", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		manager := syncmocks.NewMockManager(ctrl)
		stateSvc := statemocks.NewMockCatalogStateService(ctrl)

		current := &status.SyncStatus{Phase: status.SyncPhaseFailed, AttemptCount: 2}
		stateSvc.EXPECT().UpdateStatusAtomically(gomock.Any(), testCatalogName, gomock.Any()).
			DoAndReturn(applyUpdate(current))
		manager.EXPECT().ShouldSync(gomock.Any(), gomock.Any(), gomock.Any(), false).
			Return(sync.ReasonCatalogNotReady)
		stateSvc.EXPECT().GetSyncStatus(gomock.Any(), testCatalogName).DoAndReturn(
			func(context.Context, string) (*status.SyncStatus, error) {
				assert.Equal(t, status.SyncPhaseSyncing, current.Phase)
				assert.Equal(t, 3, current.AttemptCount)
				assert.NotNil(t, current.LastAttempt)
				statusCopy := *current
				return &statusCopy, nil
			})
		manager.EXPECT().PerformSync(gomock.Any(), gomock.Any()).Return(&sync.Result{
			Hash:          "0123456789abcdef",
			FilterHash:    "filterhash",
			PlaylistCount: 3,
			VideoCount:    11,
		}, nil)

		var final *status.SyncStatus
		stateSvc.EXPECT().UpdateSyncStatus(gomock.Any(), testCatalogName, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, s *status.SyncStatus) error {
				final = s
				return nil
			})

		c := New(manager, stateSvc, testConfig()).(*defaultCoordinator)
		c.checkCatalogSync(context.Background(), false)

		require.NotNil(t, final)
		assert.Equal(t, status.SyncPhaseComplete, final.Phase)
		assert.Equal(t, "Sync completed successfully", final.Message)
		assert.Equal(t, "0123456789abcdef", final.LastSyncHash)
		assert.Equal(t, "filterhash", final.LastAppliedFilterHash)
		assert.Equal(t, 3, final.PlaylistCount)
		assert.Equal(t, 11, final.VideoCount)
		assert.Equal(t, 0, final.AttemptCount)
		assert.Equal(t, "15m", final.SyncSchedule)
		assert.NotNil(t, final.LastSyncTime)
		assert.NotNil(t, final.LastAttempt)
	})

	t.Run("failed sync keeps previous sync data", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		manager := syncmocks.NewMockManager(ctrl)
		stateSvc := statemocks.NewMockCatalogStateService(ctrl)

		lastSync := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
		current := &status.SyncStatus{
			Phase:         status.SyncPhaseComplete,
			LastSyncTime:  &lastSync,
			LastSyncHash:  "oldhash",
			PlaylistCount: 7,
		}
		stateSvc.EXPECT().UpdateStatusAtomically(gomock.Any(), testCatalogName, gomock.Any()).
			DoAndReturn(applyUpdate(current))
		manager.EXPECT().ShouldSync(gomock.Any(), gomock.Any(), gomock.Any(), false).
			Return(sync.ReasonSourceDataChanged)
		stateSvc.EXPECT().GetSyncStatus(gomock.Any(), testCatalogName).DoAndReturn(
			func(context.Context, string) (*status.SyncStatus, error) {
				statusCopy := *current
				return &statusCopy, nil
			})
		manager.EXPECT().PerformSync(gomock.Any(), gomock.Any()).Return(nil, &sync.Error{
			Err:             errors.New("connection refused"),
			Message:         "Failed to fetch catalog: connection refused",
			ConditionType:   sync.ConditionSourceAvailable,
			ConditionReason: "FetchFailed",
		})

		var final *status.SyncStatus
		stateSvc.EXPECT().UpdateSyncStatus(gomock.Any(), testCatalogName, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, s *status.SyncStatus) error {
				final = s
				return nil
			})

		c := New(manager, stateSvc, testConfig()).(*defaultCoordinator)
		c.checkCatalogSync(context.Background(), false)

		require.NotNil(t, final)
		assert.Equal(t, status.SyncPhaseFailed, final.Phase)
		assert.Equal(t, "Failed to fetch catalog: connection refused", final.Message)
		assert.Equal(t, "oldhash", final.LastSyncHash)
		assert.Equal(t, 7, final.PlaylistCount)
		assert.Equal(t, 1, final.AttemptCount)
		require.NotNil(t, final.LastSyncTime)
		assert.True(t, lastSync.Equal(*final.LastSyncTime))
	})

	t.Run("state error skips the sync", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		manager := syncmocks.NewMockManager(ctrl)
		stateSvc := statemocks.NewMockCatalogStateService(ctrl)

		stateSvc.EXPECT().UpdateStatusAtomically(gomock.Any(), testCatalogName, gomock.Any()).
			Return(false, errors.New("disk full"))

		c := New(manager, stateSvc, testConfig()).(*defaultCoordinator)
		c.checkCatalogSync(context.Background(), false)
	})
}

func TestCoordinator_SyncOnce(t *testing.T) {
	t.Parallel()

	t.Run("manual check without changes", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		manager := syncmocks.NewMockManager(ctrl)
		stateSvc := statemocks.NewMockCatalogStateService(ctrl)

		current := &status.SyncStatus{Phase: status.SyncPhaseComplete}
		stateSvc.EXPECT().Initialize(gomock.Any(), testCatalogName).Return(nil)
		stateSvc.EXPECT().UpdateStatusAtomically(gomock.Any(), testCatalogName, gomock.Any()).
			DoAndReturn(applyUpdate(current))
		manager.EXPECT().ShouldSync(gomock.Any(), gomock.Any(), gomock.Any(), true).
			Return(sync.ReasonManualNoChanges)
		stateSvc.EXPECT().GetSyncStatus(gomock.Any(), testCatalogName).Return(current, nil)

		got, err := New(manager, stateSvc, testConfig()).SyncOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, status.SyncPhaseComplete, got.Phase)
	})

	t.Run("initialize failure", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		stateSvc := statemocks.NewMockCatalogStateService(ctrl)
		stateSvc.EXPECT().Initialize(gomock.Any(), testCatalogName).Return(errors.New("boom"))

		_, err := New(syncmocks.NewMockManager(ctrl), stateSvc, testConfig()).SyncOnce(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestCoordinator_StartStop(t *testing.T) {
	t.Parallel()

	t.Run("initialize failure stops start", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		stateSvc := statemocks.NewMockCatalogStateService(ctrl)
		stateSvc.EXPECT().Initialize(gomock.Any(), testCatalogName).Return(errors.New("no data dir"))

		c := New(syncmocks.NewMockManager(ctrl), stateSvc, testConfig())
		err := c.Start(context.Background())
		require.Error(t, err)
		require.NoError(t, c.Stop())
	})

	t.Run("runs initial and periodic checks until stopped", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		manager := syncmocks.NewMockManager(ctrl)
		stateSvc := statemocks.NewMockCatalogStateService(ctrl)

		checks := make(chan struct{}, 16)
		current := &status.SyncStatus{Phase: status.SyncPhaseComplete}
		stateSvc.EXPECT().Initialize(gomock.Any(), testCatalogName).Return(nil)
		stateSvc.EXPECT().UpdateStatusAtomically(gomock.Any(), testCatalogName, gomock.Any()).
			DoAndReturn(func(ctx context.Context, name string, fn func(*status.SyncStatus) bool) (bool, error) {
				checks <- struct{}{}
				return applyUpdate(current)(ctx, name, fn)
			}).MinTimes(2)
		manager.EXPECT().ShouldSync(gomock.Any(), gomock.Any(), gomock.Any(), false).
			Return(sync.ReasonUpToDateWithPolicy).MinTimes(2)

		c := New(manager, stateSvc, testConfig()).(*defaultCoordinator)
		c.intervalFn = func(time.Duration) time.Duration { return 10 * time.Millisecond }

		errCh := make(chan error, 1)
		go func() { errCh <- c.Start(context.Background()) }()

		for range 2 {
			select {
			case <-checks:
			case <-time.After(5 * time.Second):
				t.Fatal("timed out waiting for sync check")
			}
		}

		require.NoError(t, c.Stop())
		require.NoError(t, <-errCh)
	})

	t.Run("stop before start is a no-op", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		c := New(syncmocks.NewMockManager(ctrl), statemocks.NewMockCatalogStateService(ctrl), testConfig())
		assert.NoError(t, c.Stop())
	})
}

func TestCoordinator_WithFileState(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	manager := syncmocks.NewMockManager(ctrl)
	stateSvc := state.NewFileStateService(status.NewFileStatusPersistence(t.TempDir()))

	manager.EXPECT().ShouldSync(gomock.Any(), gomock.Any(), gomock.Any(), true).
		DoAndReturn(func(_ context.Context, _ *config.Config, s *status.SyncStatus, _ bool) sync.Reason {
			if s.IsReady() {
				return sync.ReasonManualNoChanges
			}
			return sync.ReasonCatalogNotReady
		}).Times(2)
	manager.EXPECT().PerformSync(gomock.Any(), gomock.Any()).
		Return(&sync.Result{Hash: "h1", PlaylistCount: 2, VideoCount: 5}, nil)

	c := New(manager, stateSvc, testConfig())

	first, err := c.SyncOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, status.SyncPhaseComplete, first.Phase)
	assert.Equal(t, 2, first.PlaylistCount)

	second, err := c.SyncOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "h1", second.LastSyncHash)
}
