package sources

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/stacklok/readmode-server/internal/catalog"
	"github.com/stacklok/readmode-server/internal/config"
)

//go:generate mockgen -destination=mocks/mock_source_handler.go -package=mocks -source=types.go SourceHandler,SourceHandlerFactory

// SourceHandler fetches catalog data from an external data source
type SourceHandler interface {
	// FetchCatalog retrieves data from the source and returns the result
	FetchCatalog(ctx context.Context, cfg *config.Config) (*FetchResult, error)

	// Validate validates the source configuration
	Validate(source *config.SourceConfig) error

	// CurrentHash returns the current hash of the source data without parsing it
	CurrentHash(ctx context.Context, cfg *config.Config) (string, error)
}

// SourceHandlerFactory creates source handlers based on source type
type SourceHandlerFactory interface {
	// CreateHandler creates a source handler for the given source type
	CreateHandler(sourceType string) (SourceHandler, error)
}

// FetchResult contains the result of a fetch operation
type FetchResult struct {
	Catalog *catalog.Catalog

	// Hash is the SHA256 hash of the source data for change detection
	Hash string

	PlaylistCount int
	VideoCount    int

	// Format indicates the original format of the source data
	Format string
}

// NewFetchResult creates a FetchResult from a catalog and a hash computed by
// the source handler, so that it matches CurrentHash
func NewFetchResult(cat *catalog.Catalog, hash string, format string) *FetchResult {
	result := &FetchResult{
		Catalog: cat,
		Hash:    hash,
		Format:  format,
	}
	if cat != nil {
		result.PlaylistCount = len(cat.Playlists)
		result.VideoCount = len(cat.Videos)
	}
	return result
}

// CatalogDataValidator parses and validates raw catalog documents
type CatalogDataValidator interface {
	ValidateData(data []byte, format string) (*catalog.Catalog, error)
}

type defaultCatalogDataValidator struct{}

// NewCatalogDataValidator creates the JSON/YAML catalog validator
func NewCatalogDataValidator() CatalogDataValidator {
	return defaultCatalogDataValidator{}
}

// ValidateData decodes data in the given format and validates the catalog
func (defaultCatalogDataValidator) ValidateData(data []byte, format string) (*catalog.Catalog, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("data cannot be empty")
	}

	var cat catalog.Catalog
	switch format {
	case config.SourceFormatJSON:
		if err := json.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("failed to parse JSON catalog: %w", err)
		}
	case config.SourceFormatYAML:
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("failed to parse YAML catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	normalize(&cat)
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// normalize fills the fields a source may leave empty
func normalize(cat *catalog.Catalog) {
	if cat.Version == "" {
		cat.Version = catalog.CatalogVersion
	}
	if cat.Playlists == nil {
		cat.Playlists = []catalog.Playlist{}
	}
	if cat.Videos == nil {
		cat.Videos = []catalog.Video{}
	}
}

func hashBytes(parts ...[]byte) string {
	h := sha256.New()
	for _, part := range parts {
		_, _ = h.Write(part)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
