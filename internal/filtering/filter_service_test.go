package filtering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/readmode-server/internal/catalog"
	"github.com/stacklok/readmode-server/internal/config"
)

func sourceCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Version:     catalog.CatalogVersion,
		LastUpdated: "2024-01-01T00:00:00Z",
		Playlists: []catalog.Playlist{
			{ID: "jazz-cafe", Title: "카페 재즈", Genre: "#재즈", Mood: "#밝은"},
			{ID: "jazz-draft", Title: "초안", Genre: "#재즈", Mood: "#어두운"},
			{ID: "horror-night", Title: "공포의 밤", Genre: "#앰비언트", Mood: "#공포, #긴장되는"},
		},
		Videos: []catalog.Video{
			{YouTubeID: "v1", PlaylistID: "jazz-cafe"},
			{YouTubeID: "v2", PlaylistID: "jazz-draft"},
			{YouTubeID: "v3", PlaylistID: "horror-night"},
			{YouTubeID: "v1", PlaylistID: "horror-night"},
		},
	}
}

func playlistIDs(playlists []catalog.Playlist) []string {
	ids := make([]string, 0, len(playlists))
	for _, p := range playlists {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestDefaultFilterService_ApplyFilters_NoFilter(t *testing.T) {
	t.Parallel()

	service := NewDefaultFilterService()
	original := sourceCatalog()

	result, err := service.ApplyFilters(context.Background(), original, nil)
	require.NoError(t, err)
	assert.Same(t, original, result, "No filter should return original catalog")
}

func TestDefaultFilterService_ApplyFilters_NilCatalog(t *testing.T) {
	t.Parallel()

	_, err := NewDefaultFilterService().ApplyFilters(context.Background(), nil, &config.FilterConfig{})
	assert.Error(t, err)
}

func TestDefaultFilterService_ApplyFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		filter            *config.FilterConfig
		expectedPlaylists []string
		expectedVideos    []string
	}{
		{
			name:              "empty filter keeps everything",
			filter:            &config.FilterConfig{},
			expectedPlaylists: []string{"jazz-cafe", "jazz-draft", "horror-night"},
			expectedVideos:    []string{"v1", "v2", "v3", "v1"},
		},
		{
			name: "name include with exclude precedence",
			filter: &config.FilterConfig{
				Names: &config.NameFilterConfig{Include: []string{"jazz-*"}, Exclude: []string{"*-draft"}},
			},
			expectedPlaylists: []string{"jazz-cafe"},
			expectedVideos:    []string{"v1"},
		},
		{
			name: "tag exclude",
			filter: &config.FilterConfig{
				Tags: &config.TagFilterConfig{Exclude: []string{"#공포"}},
			},
			expectedPlaylists: []string{"jazz-cafe", "jazz-draft"},
			expectedVideos:    []string{"v1", "v2"},
		},
		{
			name: "name and tag must both pass",
			filter: &config.FilterConfig{
				Names: &config.NameFilterConfig{Include: []string{"jazz-*"}},
				Tags:  &config.TagFilterConfig{Include: []string{"#어두운"}},
			},
			expectedPlaylists: []string{"jazz-draft"},
			expectedVideos:    []string{"v2"},
		},
		{
			name: "nothing matches",
			filter: &config.FilterConfig{
				Tags: &config.TagFilterConfig{Include: []string{"#없음"}},
			},
			expectedPlaylists: []string{},
			expectedVideos:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			original := sourceCatalog()
			result, err := NewDefaultFilterService().ApplyFilters(context.Background(), original, tt.filter)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedPlaylists, playlistIDs(result.Playlists))

			videos := make([]string, 0, len(result.Videos))
			for _, v := range result.Videos {
				videos = append(videos, v.YouTubeID)
			}
			assert.Equal(t, tt.expectedVideos, videos)

			assert.Equal(t, original.Version, result.Version)
			assert.Equal(t, original.LastUpdated, result.LastUpdated)
			assert.Len(t, original.Playlists, 3, "input catalog must not change")
		})
	}
}

type stubNameFilter struct{ allow bool }

func (s stubNameFilter) ShouldInclude(string, []string, []string) (bool, string) {
	return s.allow, "stub"
}

func TestNewFilterService_UsesCustomFilters(t *testing.T) {
	t.Parallel()

	service := NewFilterService(stubNameFilter{allow: false}, NewDefaultTagFilter())
	result, err := service.ApplyFilters(context.Background(), sourceCatalog(), &config.FilterConfig{})
	require.NoError(t, err)
	assert.Empty(t, result.Playlists)
	assert.Empty(t, result.Videos)
}
