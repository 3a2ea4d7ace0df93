//go:build integration

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/readmode-server/internal/catalog"
)

func TestMigrations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, _ := SetupTestDB(t)

	// down, then up again
	require.NoError(t, MigrateDown(ctx, db))
	require.NoError(t, MigrateUp(ctx, db))

	// up is idempotent
	require.NoError(t, MigrateUp(ctx, db))

	var count int
	require.NoError(t, db.QueryRow(ctx, "SELECT count(*) FROM playlists").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestSeedCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, _ := SetupTestDB(t)

	cat := &catalog.Catalog{
		Playlists: []catalog.Playlist{
			{ID: "p1", Title: "비 오는 날", Mood: "#슬픔, #잔잔", DisplayOrder: catalog.Order(1)},
			{ID: "p2", Title: "아침", Genre: "#클래식"},
		},
		Videos: []catalog.Video{
			{YouTubeID: "v1", Title: "first", PlaylistID: "p1"},
			{YouTubeID: "v2", Title: "second", PlaylistID: "p1"},
		},
	}
	require.NoError(t, SeedCatalog(ctx, db, cat))

	var mood string
	require.NoError(t, db.QueryRow(ctx, "SELECT mood FROM playlists WHERE id = 'p1'").Scan(&mood))
	assert.Equal(t, "#슬픔, #잔잔", mood)

	// seeding again replaces the previous rows
	cat.Playlists = cat.Playlists[1:]
	cat.Videos = nil
	require.NoError(t, SeedCatalog(ctx, db, cat))

	var playlists, videos int
	require.NoError(t, db.QueryRow(ctx, "SELECT count(*) FROM playlists").Scan(&playlists))
	require.NoError(t, db.QueryRow(ctx, "SELECT count(*) FROM videos").Scan(&videos))
	assert.Equal(t, 1, playlists)
	assert.Equal(t, 0, videos)
}

func TestMigrator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, dbCfg := SetupTestDB(t)
	connStr, err := dbCfg.GetConnectionString()
	require.NoError(t, err)

	m, err := NewFromConnectionString(connStr)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = m.Close()
	})

	require.NoError(t, m.Up())
	assert.ErrorIs(t, m.Up(), migrate.ErrNoChange)

	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	require.NoError(t, m.Down())
	_, _, err = m.Version()
	assert.True(t, errors.Is(err, migrate.ErrNilVersion))

	var tables int
	require.NoError(t, db.QueryRow(ctx,
		"SELECT count(*) FROM information_schema.tables WHERE table_name IN ('playlists', 'videos')").
		Scan(&tables))
	assert.Equal(t, 0, tables)
}

func TestSeedCatalog_SharedAndUnknownPlaylistVideos(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, _ := SetupTestDB(t)

	cat := &catalog.Catalog{
		Playlists: []catalog.Playlist{
			{ID: "a", Title: "A"},
			{ID: "b", Title: "B"},
		},
		Videos: []catalog.Video{
			{YouTubeID: "v1", Title: "shared", PlaylistID: "a"},
			{YouTubeID: "v1", Title: "shared", PlaylistID: "b"},
			{YouTubeID: "v2", Title: "orphan", PlaylistID: "gone"},
		},
	}
	require.NoError(t, cat.Validate())
	require.NoError(t, SeedCatalog(ctx, db, cat))

	var videos int
	require.NoError(t, db.QueryRow(ctx, "SELECT count(*) FROM videos").Scan(&videos))
	assert.Equal(t, 3, videos)

	var shared int
	require.NoError(t, db.QueryRow(ctx, "SELECT count(*) FROM videos WHERE youtube_id = 'v1'").Scan(&shared))
	assert.Equal(t, 2, shared)
}

func TestSeedCatalog_NilCatalog(t *testing.T) {
	t.Parallel()

	db, _ := SetupTestDB(t)
	assert.Error(t, SeedCatalog(context.Background(), db, nil))
}
