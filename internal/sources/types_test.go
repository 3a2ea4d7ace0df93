package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/readmode-server/internal/catalog"
	"github.com/stacklok/readmode-server/internal/config"
)

func TestNewFetchResult(t *testing.T) {
	t.Parallel()

	result := NewFetchResult(nil, "h", config.SourceFormatJSON)
	assert.Zero(t, result.PlaylistCount)
	assert.Zero(t, result.VideoCount)

	cat := &catalog.Catalog{
		Playlists: []catalog.Playlist{{ID: "a"}, {ID: "b"}},
		Videos:    []catalog.Video{{YouTubeID: "v"}},
	}
	result = NewFetchResult(cat, "h", config.SourceFormatYAML)
	assert.Equal(t, 2, result.PlaylistCount)
	assert.Equal(t, 1, result.VideoCount)
	assert.Equal(t, config.SourceFormatYAML, result.Format)
}

func TestCatalogDataValidator_ValidateData(t *testing.T) {
	t.Parallel()

	validator := NewCatalogDataValidator()

	cat, err := validator.ValidateData([]byte(`{"playlists":[{"id":"p","title":"t"}]}`), config.SourceFormatJSON)
	require.NoError(t, err)
	assert.Equal(t, catalog.CatalogVersion, cat.Version)
	assert.NotNil(t, cat.Videos)

	_, err = validator.ValidateData([]byte(`{}`), "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	_, err = validator.ValidateData(nil, config.SourceFormatJSON)
	assert.Error(t, err)
}

func TestHashBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, hashBytes([]byte("ab")), hashBytes([]byte("a"), []byte("b")))
	assert.NotEqual(t, hashBytes([]byte("a")), hashBytes([]byte("b")))
	assert.Len(t, hashBytes(), 64)
}
