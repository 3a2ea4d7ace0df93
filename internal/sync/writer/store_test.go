package writer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/readmode-server/internal/catalog"
)

func sampleCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Version:     catalog.CatalogVersion,
		LastUpdated: "2026-01-02T03:04:05Z",
		Playlists: []catalog.Playlist{
			{ID: "p1", Title: "새벽 독서", Mood: "#차분한", DisplayOrder: catalog.Order(1)},
		},
		Videos: []catalog.Video{
			{YouTubeID: "v1", Title: "Nocturne", PlaylistID: "p1"},
		},
	}
}

func TestCatalogStore_StoreAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewCatalogStore()
	assert.False(t, store.Has("default"))

	_, err := store.Get(ctx, "default")
	require.ErrorIs(t, err, ErrCatalogNotFound)

	cat := sampleCatalog()
	require.NoError(t, store.Store(ctx, "default", cat))
	assert.True(t, store.Has("default"))

	got, err := store.Get(ctx, "default")
	require.NoError(t, err)
	assert.Same(t, cat, got)

	assert.Error(t, store.Store(ctx, "default", nil))
}

func TestCatalogStore_Snapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	first := NewCatalogStore(WithSnapshotDir(dir))
	require.NoError(t, first.Store(ctx, "default", sampleCatalog()))

	_, err := os.Stat(filepath.Join(dir, "default", SnapshotFileName))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "default", SnapshotFileName+".tmp"))
	assert.True(t, os.IsNotExist(err))

	second := NewCatalogStore(WithSnapshotDir(dir))
	require.True(t, second.LoadSnapshot(ctx, "default"))

	got, err := second.Get(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, sampleCatalog(), got)
}

func TestCatalogStore_LoadSnapshotSkipsBadData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
	}{
		{name: "corrupt json", content: "{not json"},
		{name: "invalid catalog", content: `{"playlists":[{"id":"","title":"x"}],"videos":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			require.NoError(t, os.MkdirAll(filepath.Join(dir, "default"), 0750))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "default", SnapshotFileName), []byte(tt.content), 0600))

			store := NewCatalogStore(WithSnapshotDir(dir))
			assert.False(t, store.LoadSnapshot(ctx, "default"))
			assert.False(t, store.Has("default"))
		})
	}
}

func TestCatalogStore_LoadSnapshotWithoutDir(t *testing.T) {
	t.Parallel()

	assert.False(t, NewCatalogStore().LoadSnapshot(context.Background(), "default"))
	assert.False(t, NewCatalogStore(WithSnapshotDir(t.TempDir())).LoadSnapshot(context.Background(), "default"))
}
