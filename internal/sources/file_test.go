package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/readmode-server/internal/config"
)

const jsonCatalog = `{
  "version": "1.0.0",
  "last_updated": "2024-05-01T00:00:00Z",
  "playlists": [
    {"id": "p1", "title": "카페 재즈", "genre": "#재즈", "era": "#현대", "mood": "#밝은", "conditions": "#카페", "display_order": 1}
  ],
  "videos": [
    {"youtube_id": "v1", "title": "Take Five", "author": "Brubeck", "duration": "5:24", "playlist_id": "p1"}
  ]
}`

const yamlCatalog = `playlists:
  - id: p1
    title: 새벽 독서
    mood: "#차분한, #잔잔한"
videos:
  - youtube_id: v1
    playlist_id: p1
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func fileConfig(path string) *config.Config {
	return &config.Config{Source: config.SourceConfig{File: &config.FileConfig{Path: path}}}
}

func TestFileSourceHandler_FetchCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		fileName      string
		content       string
		format        string
		wantErr       string
		wantPlaylists int
		wantFormat    string
	}{
		{
			name:          "json file",
			fileName:      "catalog.json",
			content:       jsonCatalog,
			wantPlaylists: 1,
			wantFormat:    config.SourceFormatJSON,
		},
		{
			name:          "yaml file by extension",
			fileName:      "catalog.yaml",
			content:       yamlCatalog,
			wantPlaylists: 1,
			wantFormat:    config.SourceFormatYAML,
		},
		{
			name:     "invalid json",
			fileName: "catalog.json",
			content:  "{",
			wantErr:  "validation failed",
		},
		{
			name:     "empty file",
			fileName: "catalog.json",
			content:  "",
			wantErr:  "data cannot be empty",
		},
		{
			name:     "playlist without id",
			fileName: "catalog.json",
			content:  `{"playlists":[{"title":"x"}]}`,
			wantErr:  "invalid catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := fileConfig(writeFile(t, tt.fileName, tt.content))
			cfg.Source.Format = tt.format

			result, err := NewFileSourceHandler().FetchCatalog(context.Background(), cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPlaylists, result.PlaylistCount)
			assert.Equal(t, tt.wantFormat, result.Format)
			assert.NotEmpty(t, result.Hash)
			assert.Equal(t, "1.0.0", result.Catalog.Version)
		})
	}
}

func TestFileSourceHandler_CurrentHashMatchesFetch(t *testing.T) {
	t.Parallel()

	handler := NewFileSourceHandler()
	cfg := fileConfig(writeFile(t, "catalog.json", jsonCatalog))

	result, err := handler.FetchCatalog(context.Background(), cfg)
	require.NoError(t, err)

	hash, err := handler.CurrentHash(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, result.Hash, hash)

	require.NoError(t, os.WriteFile(cfg.Source.File.Path, []byte(yamlCatalog), 0600))
	changed, err := handler.CurrentHash(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotEqual(t, hash, changed)
}

func TestFileSourceHandler_Errors(t *testing.T) {
	t.Parallel()

	handler := NewFileSourceHandler()

	_, err := handler.FetchCatalog(context.Background(), fileConfig(filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")

	assert.Error(t, handler.Validate(nil))
	assert.Error(t, handler.Validate(&config.SourceConfig{}))
	assert.Error(t, handler.Validate(&config.SourceConfig{File: &config.FileConfig{}}))
	assert.NoError(t, handler.Validate(&config.SourceConfig{File: &config.FileConfig{Path: "x.json"}}))
}
