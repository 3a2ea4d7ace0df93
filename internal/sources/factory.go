package sources

import (
	"fmt"

	"github.com/stacklok/readmode-server/internal/config"
)

type defaultSourceHandlerFactory struct{}

var _ SourceHandlerFactory = (*defaultSourceHandlerFactory)(nil)

// NewSourceHandlerFactory creates a new source handler factory
func NewSourceHandlerFactory() SourceHandlerFactory {
	return &defaultSourceHandlerFactory{}
}

// CreateHandler creates a source handler for the given source type
func (*defaultSourceHandlerFactory) CreateHandler(sourceType string) (SourceHandler, error) {
	switch sourceType {
	case config.SourceTypeFile:
		return NewFileSourceHandler(), nil
	case config.SourceTypeAPI:
		return NewAPISourceHandler(), nil
	case config.SourceTypeDatabase:
		return NewDatabaseSourceHandler(), nil
	default:
		return nil, fmt.Errorf("unsupported source type: %s", sourceType)
	}
}
