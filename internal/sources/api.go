package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stacklok/readmode-server/internal/catalog"
	"github.com/stacklok/readmode-server/internal/config"
	"github.com/stacklok/readmode-server/internal/httpclient"
)

const (
	playlistsQuery = "select=*&order=display_order.asc,title.asc"
	videosQuery    = "select=*"
)

// apiSourceHandler reads the playlists and videos tables of a PostgREST API
type apiSourceHandler struct {
	newClient func(timeout time.Duration) httpclient.Client
}

// NewAPISourceHandler creates a new API source handler
func NewAPISourceHandler() SourceHandler {
	return &apiSourceHandler{
		newClient: func(timeout time.Duration) httpclient.Client {
			return httpclient.NewDefaultClient(timeout)
		},
	}
}

// NewAPISourceHandlerWithClient creates an API source handler using client for every request
func NewAPISourceHandlerWithClient(client httpclient.Client) SourceHandler {
	return &apiSourceHandler{
		newClient: func(time.Duration) httpclient.Client { return client },
	}
}

// Validate validates the API source configuration
func (*apiSourceHandler) Validate(source *config.SourceConfig) error {
	if source == nil {
		return fmt.Errorf("source configuration cannot be nil")
	}
	if source.Format != "" && source.Format != config.SourceFormatJSON {
		return fmt.Errorf("unsupported format: expected %s or empty, got %s",
			config.SourceFormatJSON, source.Format)
	}
	if source.API == nil {
		return fmt.Errorf("api configuration is required for source type %s", config.SourceTypeAPI)
	}
	if source.API.Endpoint == "" {
		return fmt.Errorf("api endpoint cannot be empty")
	}
	return nil
}

// FetchCatalog fetches playlists and videos concurrently and joins them into a catalog
func (h *apiSourceHandler) FetchCatalog(ctx context.Context, cfg *config.Config) (*FetchResult, error) {
	playlistsData, videosData, err := h.fetchTables(ctx, &cfg.Source)
	if err != nil {
		return nil, err
	}

	var playlistRows []apiPlaylistRow
	if err := json.Unmarshal(playlistsData, &playlistRows); err != nil {
		return nil, fmt.Errorf("failed to parse playlists response: %w", err)
	}
	var videoRows []apiVideoRow
	if err := json.Unmarshal(videosData, &videoRows); err != nil {
		return nil, fmt.Errorf("failed to parse videos response: %w", err)
	}

	cat := &catalog.Catalog{
		Version:     catalog.CatalogVersion,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Playlists:   make([]catalog.Playlist, 0, len(playlistRows)),
		Videos:      make([]catalog.Video, 0, len(videoRows)),
	}
	for _, row := range playlistRows {
		cat.Playlists = append(cat.Playlists, row.toPlaylist())
	}
	for _, row := range videoRows {
		cat.Videos = append(cat.Videos, row.toVideo())
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	slog.DebugContext(ctx, "Fetched catalog from API",
		"endpoint", cfg.Source.API.Endpoint,
		"playlists", len(cat.Playlists),
		"videos", len(cat.Videos))

	return NewFetchResult(cat, hashBytes(playlistsData, videosData), config.SourceFormatJSON), nil
}

// CurrentHash fetches both tables and hashes the raw responses
func (h *apiSourceHandler) CurrentHash(ctx context.Context, cfg *config.Config) (string, error) {
	playlistsData, videosData, err := h.fetchTables(ctx, &cfg.Source)
	if err != nil {
		return "", err
	}
	return hashBytes(playlistsData, videosData), nil
}

func (h *apiSourceHandler) fetchTables(ctx context.Context, source *config.SourceConfig) ([]byte, []byte, error) {
	if err := h.Validate(source); err != nil {
		return nil, nil, fmt.Errorf("source validation failed: %w", err)
	}

	api := source.API
	apiKey, err := api.GetAPIKey()
	if err != nil {
		return nil, nil, err
	}

	var opts []httpclient.RequestOption
	if apiKey != "" {
		opts = append(opts,
			httpclient.WithHeader("apikey", apiKey),
			httpclient.WithHeader("Authorization", "Bearer "+apiKey),
		)
	}

	playlistsURL, err := tableURL(api.Endpoint, api.GetPlaylistsPath(), playlistsQuery)
	if err != nil {
		return nil, nil, err
	}
	videosURL, err := tableURL(api.Endpoint, api.GetVideosPath(), videosQuery)
	if err != nil {
		return nil, nil, err
	}

	client := h.newClient(api.GetTimeout())

	var playlistsData, videosData []byte
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := client.Get(gctx, playlistsURL, opts...)
		if err != nil {
			return fmt.Errorf("failed to fetch playlists: %w", err)
		}
		playlistsData = data
		return nil
	})
	g.Go(func() error {
		data, err := client.Get(gctx, videosURL, opts...)
		if err != nil {
			return fmt.Errorf("failed to fetch videos: %w", err)
		}
		videosData = data
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return playlistsData, videosData, nil
}

// tableURL joins the endpoint with a resource path and query
func tableURL(endpoint, path, query string) (string, error) {
	base, err := url.Parse(strings.TrimSuffix(endpoint, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid api endpoint: %w", err)
	}
	base.Path = strings.TrimSuffix(base.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	base.RawQuery = query
	return base.String(), nil
}

// flexString accepts JSON strings, numbers and null. Row ids are often
// integer columns.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

type apiPlaylistRow struct {
	ID           flexString `json:"id"`
	Title        flexString `json:"title"`
	Genre        flexString `json:"genre"`
	Era          flexString `json:"era"`
	Mood         flexString `json:"mood"`
	Conditions   flexString `json:"conditions"`
	TargetBooks  flexString `json:"target_books"`
	DisplayOrder *int       `json:"display_order"`
}

func (r apiPlaylistRow) toPlaylist() catalog.Playlist {
	p := catalog.Playlist{
		ID:           string(r.ID),
		Title:        string(r.Title),
		Genre:        string(r.Genre),
		Era:          string(r.Era),
		Mood:         string(r.Mood),
		Conditions:   string(r.Conditions),
		TargetBooks:  string(r.TargetBooks),
		DisplayOrder: r.DisplayOrder,
	}
	return p
}

type apiVideoRow struct {
	YouTubeID  flexString `json:"youtube_id"`
	Title      flexString `json:"title"`
	Author     flexString `json:"author"`
	Duration   flexString `json:"duration"`
	PlaylistID flexString `json:"playlist_id"`
}

func (r apiVideoRow) toVideo() catalog.Video {
	return catalog.Video{
		YouTubeID:  string(r.YouTubeID),
		Title:      string(r.Title),
		Author:     string(r.Author),
		Duration:   string(r.Duration),
		PlaylistID: string(r.PlaylistID),
	}
}
