package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/readmode-server/internal/catalog"
	"github.com/stacklok/readmode-server/internal/config"
	"github.com/stacklok/readmode-server/internal/httpclient"
)

const (
	playlistsBody = `[
  {"id": 1, "title": "카페 재즈", "genre": "#재즈", "era": null, "mood": "#밝은", "conditions": "#카페", "display_order": 1},
  {"id": 2, "title": "새벽 독서", "genre": "#클래식", "era": "#근대", "mood": "#차분한", "conditions": null, "display_order": null}
]`
	videosBody = `[
  {"youtube_id": "v1", "title": "Take Five", "author": "Brubeck", "duration": "5:24", "playlist_id": 1},
  {"youtube_id": "v2", "title": "Nocturne", "author": "Chopin", "duration": "4:30", "playlist_id": 2}
]`
)

type recordedRequest struct {
	path, query, apiKey, authorization string
}

func newAPIServer(t *testing.T, status int) (*httptest.Server, func() []recordedRequest) {
	t.Helper()

	var mu sync.Mutex
	var requests []recordedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, recordedRequest{
			path:          r.URL.Path,
			query:         r.URL.RawQuery,
			apiKey:        r.Header.Get("apikey"),
			authorization: r.Header.Get("Authorization"),
		})
		mu.Unlock()

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		switch r.URL.Path {
		case "/rest/v1/playlists":
			_, _ = w.Write([]byte(playlistsBody))
		case "/rest/v1/videos":
			_, _ = w.Write([]byte(videosBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	server.Config.SetKeepAlivesEnabled(false)
	t.Cleanup(server.Close)

	return server, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), requests...)
	}
}

func apiConfig(endpoint string) *config.Config {
	return &config.Config{Source: config.SourceConfig{API: &config.APIConfig{Endpoint: endpoint}}}
}

func TestAPISourceHandler_FetchCatalog(t *testing.T) {
	t.Parallel()

	server, requests := newAPIServer(t, http.StatusOK)

	keyFile := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(keyFile, []byte("anon-key"), 0600))
	cfg := apiConfig(server.URL + "/")
	cfg.Source.API.APIKeyFile = keyFile

	result, err := NewAPISourceHandler().FetchCatalog(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, result.Catalog.Playlists, 2)
	assert.Equal(t, "1", result.Catalog.Playlists[0].ID)
	assert.Empty(t, result.Catalog.Playlists[0].Era)
	require.NotNil(t, result.Catalog.Playlists[0].DisplayOrder)
	assert.Equal(t, 1, *result.Catalog.Playlists[0].DisplayOrder)
	assert.Nil(t, result.Catalog.Playlists[1].DisplayOrder)
	require.Len(t, result.Catalog.Videos, 2)
	assert.Equal(t, "2", result.Catalog.Videos[1].PlaylistID)
	assert.Equal(t, 2, result.PlaylistCount)
	assert.Equal(t, 2, result.VideoCount)
	assert.Equal(t, config.SourceFormatJSON, result.Format)
	assert.NotEmpty(t, result.Hash)

	recorded := requests()
	require.Len(t, recorded, 2)
	byPath := map[string]recordedRequest{}
	for _, r := range recorded {
		byPath[r.path] = r
	}
	assert.Equal(t, "select=*&order=display_order.asc,title.asc", byPath["/rest/v1/playlists"].query)
	assert.Equal(t, "select=*", byPath["/rest/v1/videos"].query)
	assert.Equal(t, "anon-key", byPath["/rest/v1/videos"].apiKey)
	assert.Equal(t, "Bearer anon-key", byPath["/rest/v1/playlists"].authorization)

	hash, err := NewAPISourceHandler().CurrentHash(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, result.Hash, hash)
}

func TestAPIPlaylistRow_NullOrderSortsLast(t *testing.T) {
	t.Parallel()

	rows := []apiPlaylistRow{
		{ID: "unordered", Title: "Apple"},
		{ID: "first", Title: "Zebra", DisplayOrder: catalog.Order(1)},
	}
	playlists := make([]catalog.Playlist, 0, len(rows))
	for _, r := range rows {
		playlists = append(playlists, r.toPlaylist())
	}
	catalog.SortPlaylists(playlists)

	require.Len(t, playlists, 2)
	assert.Equal(t, "first", playlists[0].ID)
	assert.Equal(t, "unordered", playlists[1].ID)
	assert.Nil(t, playlists[1].DisplayOrder)
}

func TestAPISourceHandler_FetchCatalog_HTTPError(t *testing.T) {
	t.Parallel()

	server, _ := newAPIServer(t, http.StatusForbidden)
	handler := NewAPISourceHandlerWithClient(httpclient.NewDefaultClient(5 * time.Second))

	_, err := handler.FetchCatalog(context.Background(), apiConfig(server.URL))
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, httpclient.StatusCode(err))
}

func TestAPISourceHandler_Validate(t *testing.T) {
	t.Parallel()

	handler := NewAPISourceHandler()
	assert.Error(t, handler.Validate(nil))
	assert.Error(t, handler.Validate(&config.SourceConfig{}))
	assert.Error(t, handler.Validate(&config.SourceConfig{API: &config.APIConfig{}}))
	assert.Error(t, handler.Validate(&config.SourceConfig{
		Format: config.SourceFormatYAML,
		API:    &config.APIConfig{Endpoint: "https://example.com"},
	}))
	assert.NoError(t, handler.Validate(&config.SourceConfig{API: &config.APIConfig{Endpoint: "https://example.com"}}))
}

func TestTableURL(t *testing.T) {
	t.Parallel()

	got, err := tableURL("https://example.supabase.co/", "/rest/v1/playlists", "select=*")
	require.NoError(t, err)
	assert.Equal(t, "https://example.supabase.co/rest/v1/playlists?select=*", got)

	got, err = tableURL("https://example.com/base", "videos", "select=*")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/base/videos?select=*", got)
}

func TestFlexString(t *testing.T) {
	t.Parallel()

	var row apiVideoRow
	require.NoError(t, row.YouTubeID.UnmarshalJSON([]byte(`"abc"`)))
	assert.Equal(t, flexString("abc"), row.YouTubeID)
	require.NoError(t, row.PlaylistID.UnmarshalJSON([]byte(`42`)))
	assert.Equal(t, flexString("42"), row.PlaylistID)
	require.NoError(t, row.Title.UnmarshalJSON([]byte(`null`)))
	assert.Empty(t, row.Title)
	assert.Error(t, row.Author.UnmarshalJSON([]byte(`{}`)))
}
