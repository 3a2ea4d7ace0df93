package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/stacklok/readmode-server/internal/catalog"
	"github.com/stacklok/readmode-server/internal/config"
)

const (
	selectPlaylists = `SELECT
	COALESCE(id::text, '') AS id,
	COALESCE(title, '') AS title,
	COALESCE(genre, '') AS genre,
	COALESCE(era, '') AS era,
	COALESCE(mood, '') AS mood,
	COALESCE(conditions, '') AS conditions,
	COALESCE(target_books, '') AS target_books,
	display_order
FROM playlists
ORDER BY display_order ASC NULLS LAST, title ASC`

	selectVideos = `SELECT
	COALESCE(youtube_id, '') AS youtube_id,
	COALESCE(title, '') AS title,
	COALESCE(author, '') AS author,
	COALESCE(duration::text, '') AS duration,
	COALESCE(playlist_id::text, '') AS playlist_id
FROM videos`

	databasePoolSize = 2
)

// catalogQuerier reads the catalog tables
type catalogQuerier interface {
	QueryPlaylists(ctx context.Context) ([]catalog.Playlist, error)
	QueryVideos(ctx context.Context) ([]catalog.Video, error)
	Close()
}

// databaseSourceHandler reads the catalog tables from PostgreSQL
type databaseSourceHandler struct {
	connect func(ctx context.Context, db *config.DatabaseConfig) (catalogQuerier, error)
}

// NewDatabaseSourceHandler creates a new database source handler
func NewDatabaseSourceHandler() SourceHandler {
	return &databaseSourceHandler{connect: connectPool}
}

// Validate validates the database source configuration
func (*databaseSourceHandler) Validate(source *config.SourceConfig) error {
	if source == nil {
		return fmt.Errorf("source configuration cannot be nil")
	}
	if source.Database == nil {
		return fmt.Errorf("database configuration is required for source type %s", config.SourceTypeDatabase)
	}
	if source.Database.Host == "" || source.Database.Database == "" {
		return fmt.Errorf("database host and name cannot be empty")
	}
	return nil
}

// FetchCatalog queries playlists and videos concurrently
func (h *databaseSourceHandler) FetchCatalog(ctx context.Context, cfg *config.Config) (*FetchResult, error) {
	playlists, videos, err := h.query(ctx, &cfg.Source)
	if err != nil {
		return nil, err
	}

	cat := &catalog.Catalog{
		Version:     catalog.CatalogVersion,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Playlists:   playlists,
		Videos:      videos,
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	hash, err := hashRows(playlists, videos)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Fetched catalog from database",
		"host", cfg.Source.Database.Host,
		"playlists", len(playlists),
		"videos", len(videos))

	return NewFetchResult(cat, hash, config.SourceFormatJSON), nil
}

// CurrentHash queries both tables and hashes their rows
func (h *databaseSourceHandler) CurrentHash(ctx context.Context, cfg *config.Config) (string, error) {
	playlists, videos, err := h.query(ctx, &cfg.Source)
	if err != nil {
		return "", err
	}
	return hashRows(playlists, videos)
}

func (h *databaseSourceHandler) query(
	ctx context.Context,
	source *config.SourceConfig,
) ([]catalog.Playlist, []catalog.Video, error) {
	if err := h.Validate(source); err != nil {
		return nil, nil, fmt.Errorf("source validation failed: %w", err)
	}

	querier, err := h.connect(ctx, source.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer querier.Close()

	var playlists []catalog.Playlist
	var videos []catalog.Video
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := querier.QueryPlaylists(gctx)
		if err != nil {
			return fmt.Errorf("failed to query playlists: %w", err)
		}
		playlists = rows
		return nil
	})
	g.Go(func() error {
		rows, err := querier.QueryVideos(gctx)
		if err != nil {
			return fmt.Errorf("failed to query videos: %w", err)
		}
		videos = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if playlists == nil {
		playlists = []catalog.Playlist{}
	}
	if videos == nil {
		videos = []catalog.Video{}
	}
	return playlists, videos, nil
}

func hashRows(playlists []catalog.Playlist, videos []catalog.Video) (string, error) {
	playlistsData, err := json.Marshal(playlists)
	if err != nil {
		return "", fmt.Errorf("failed to encode playlists: %w", err)
	}
	videosData, err := json.Marshal(videos)
	if err != nil {
		return "", fmt.Errorf("failed to encode videos: %w", err)
	}
	return hashBytes(playlistsData, videosData), nil
}

// pgxQuerier runs the catalog queries on a small connection pool
type pgxQuerier struct {
	pool *pgxpool.Pool
}

func connectPool(ctx context.Context, db *config.DatabaseConfig) (catalogQuerier, error) {
	connStr, err := db.GetConnectionString()
	if err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	poolCfg.MaxConns = databasePoolSize
	poolCfg.ConnConfig.ConnectTimeout = db.GetConnectTimeout()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &pgxQuerier{pool: pool}, nil
}

func (q *pgxQuerier) QueryPlaylists(ctx context.Context) ([]catalog.Playlist, error) {
	rows, err := q.pool.Query(ctx, selectPlaylists)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[catalog.Playlist])
}

func (q *pgxQuerier) QueryVideos(ctx context.Context) ([]catalog.Video, error) {
	rows, err := q.pool.Query(ctx, selectVideos)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[catalog.Video])
}

func (q *pgxQuerier) Close() {
	q.pool.Close()
}
