package sources

import (
	"context"
	"fmt"
	"os"

	"github.com/stacklok/readmode-server/internal/config"
)

// fileSourceHandler reads catalog data from a local file
type fileSourceHandler struct {
	validator CatalogDataValidator
}

// NewFileSourceHandler creates a new file source handler
func NewFileSourceHandler() SourceHandler {
	return &fileSourceHandler{
		validator: NewCatalogDataValidator(),
	}
}

// Validate validates the file source configuration
func (*fileSourceHandler) Validate(source *config.SourceConfig) error {
	if source == nil {
		return fmt.Errorf("source configuration cannot be nil")
	}
	if source.File == nil {
		return fmt.Errorf("file configuration is required")
	}
	if source.File.Path == "" {
		return fmt.Errorf("file path cannot be empty")
	}
	return nil
}

// FetchCatalog reads and parses the catalog file
func (h *fileSourceHandler) FetchCatalog(ctx context.Context, cfg *config.Config) (*FetchResult, error) {
	data, hash, err := h.fetchFileData(ctx, &cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file data: %w", err)
	}

	format := cfg.Source.GetFormat()
	cat, err := h.validator.ValidateData(data, format)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return NewFetchResult(cat, hash, format), nil
}

// CurrentHash hashes the file. This costs nearly as much as a fetch.
func (h *fileSourceHandler) CurrentHash(ctx context.Context, cfg *config.Config) (string, error) {
	_, hash, err := h.fetchFileData(ctx, &cfg.Source)
	if err != nil {
		return "", err
	}
	return hash, nil
}

func (h *fileSourceHandler) fetchFileData(_ context.Context, source *config.SourceConfig) ([]byte, string, error) {
	if err := h.Validate(source); err != nil {
		return nil, "", fmt.Errorf("source validation failed: %w", err)
	}

	filePath := source.File.Path

	//nolint:gosec // File path comes from user configuration, this is expected behavior
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("file not found: %s", filePath)
		}
		return nil, "", fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return data, hashBytes(data), nil
}
