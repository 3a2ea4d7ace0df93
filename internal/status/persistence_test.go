package status

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogName = "test-catalog"

func TestFileStatusPersistence_SaveAndLoad(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	persistence := NewFileStatusPersistence(tmpDir)
	require.NotNil(t, persistence)

	now := time.Now().UTC().Truncate(time.Second)
	testStatus := &SyncStatus{
		Phase:                 SyncPhaseComplete,
		Message:               "Sync completed successfully",
		LastAttempt:           &now,
		AttemptCount:          1,
		LastSyncTime:          &now,
		LastSyncHash:          "abc123",
		LastAppliedFilterHash: "def456",
		PlaylistCount:         5,
		VideoCount:            42,
		SyncSchedule:          "30m",
	}

	ctx := context.Background()
	require.NoError(t, persistence.SaveStatus(ctx, testCatalogName, testStatus))

	expectedPath := filepath.Join(tmpDir, testCatalogName, StatusFileName)
	_, err := os.Stat(expectedPath)
	require.NoError(t, err)
	_, err = os.Stat(expectedPath + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed")

	loaded, err := persistence.LoadStatus(ctx, testCatalogName)
	require.NoError(t, err)
	assert.Equal(t, testStatus.Phase, loaded.Phase)
	assert.Equal(t, testStatus.Message, loaded.Message)
	assert.Equal(t, testStatus.AttemptCount, loaded.AttemptCount)
	assert.Equal(t, testStatus.LastSyncHash, loaded.LastSyncHash)
	assert.Equal(t, testStatus.LastAppliedFilterHash, loaded.LastAppliedFilterHash)
	assert.Equal(t, testStatus.PlaylistCount, loaded.PlaylistCount)
	assert.Equal(t, testStatus.VideoCount, loaded.VideoCount)
	require.NotNil(t, loaded.LastSyncTime)
	assert.True(t, now.Equal(*loaded.LastSyncTime))
}

func TestFileStatusPersistence_LoadNonExistent(t *testing.T) {
	t.Parallel()

	persistence := NewFileStatusPersistence(t.TempDir())

	loaded, err := persistence.LoadStatus(context.Background(), "missing")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.Phase)
	assert.False(t, loaded.IsReady())
}

func TestFileStatusPersistence_LoadCorrupt(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	catalogDir := filepath.Join(tmpDir, testCatalogName)
	require.NoError(t, os.MkdirAll(catalogDir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, StatusFileName), []byte("{not json"), 0600))

	_, err := NewFileStatusPersistence(tmpDir).LoadStatus(context.Background(), testCatalogName)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
}

func TestFileStatusPersistence_Overwrite(t *testing.T) {
	t.Parallel()

	persistence := NewFileStatusPersistence(t.TempDir())
	ctx := context.Background()

	require.NoError(t, persistence.SaveStatus(ctx, testCatalogName, &SyncStatus{Phase: SyncPhaseSyncing}))
	require.NoError(t, persistence.SaveStatus(ctx, testCatalogName, &SyncStatus{Phase: SyncPhaseFailed, AttemptCount: 2}))

	loaded, err := persistence.LoadStatus(ctx, testCatalogName)
	require.NoError(t, err)
	assert.Equal(t, SyncPhaseFailed, loaded.Phase)
	assert.Equal(t, 2, loaded.AttemptCount)
}

func TestSyncStatus_IsReady(t *testing.T) {
	t.Parallel()

	var nilStatus *SyncStatus
	assert.False(t, nilStatus.IsReady())
	assert.False(t, (&SyncStatus{Phase: SyncPhaseFailed}).IsReady())

	now := time.Now()
	assert.True(t, (&SyncStatus{Phase: SyncPhaseFailed, LastSyncTime: &now}).IsReady())
}
