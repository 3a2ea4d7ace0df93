// Package database owns the Postgres schema read by the database catalog
// source, and loads catalogs into it.
package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stacklok/readmode-server/internal/catalog"
)

//go:embed migrations/000001_init.up.sql
var initMigrationUp string

//go:embed migrations/000001_init.down.sql
var initMigrationDown string

// MigrateUp creates the playlists and videos tables
func MigrateUp(ctx context.Context, db *pgx.Conn) error {
	_, err := db.Exec(ctx, initMigrationUp)
	return err
}

// MigrateDown drops the catalog tables
func MigrateDown(ctx context.Context, db *pgx.Conn) error {
	_, err := db.Exec(ctx, initMigrationDown)
	return err
}

var (
	playlistColumns = []string{
		"id", "title", "genre", "era", "mood", "conditions", "target_books", "display_order",
	}
	videoColumns = []string{"youtube_id", "title", "author", "duration", "playlist_id"}
)

// SeedCatalog replaces the contents of the catalog tables with cat.
// The replacement runs in one transaction.
func SeedCatalog(ctx context.Context, db *pgx.Conn, cat *catalog.Catalog) error {
	if cat == nil {
		return fmt.Errorf("catalog cannot be nil")
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// no-op after commit
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, "TRUNCATE videos, playlists"); err != nil {
		return fmt.Errorf("failed to clear catalog tables: %w", err)
	}

	playlistRows := make([][]any, 0, len(cat.Playlists))
	for _, p := range cat.Playlists {
		playlistRows = append(playlistRows, []any{
			p.ID, p.Title, p.Genre, p.Era, p.Mood, p.Conditions, p.TargetBooks, p.DisplayOrder,
		})
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"playlists"}, playlistColumns,
		pgx.CopyFromRows(playlistRows)); err != nil {
		return fmt.Errorf("failed to insert playlists: %w", err)
	}

	videoRows := make([][]any, 0, len(cat.Videos))
	for _, v := range cat.Videos {
		videoRows = append(videoRows, []any{v.YouTubeID, v.Title, v.Author, v.Duration, v.PlaylistID})
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"videos"}, videoColumns,
		pgx.CopyFromRows(videoRows)); err != nil {
		return fmt.Errorf("failed to insert videos: %w", err)
	}

	return tx.Commit(ctx)
}
