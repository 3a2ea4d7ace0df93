// Package writer contains the SyncWriter interface and the catalog store
// that sync writes to and the API reads from.
package writer

import (
	"context"
	"errors"

	"github.com/stacklok/readmode-server/internal/catalog"
)

// ErrCatalogNotFound is returned when no catalog has been stored under a name
var ErrCatalogNotFound = errors.New("catalog not found")

// SyncWriter persists synced catalog data
type SyncWriter interface {
	// Store replaces the catalog stored under catalogName
	Store(ctx context.Context, catalogName string, cat *catalog.Catalog) error

	// Has reports whether a catalog is stored under catalogName
	Has(catalogName string) bool
}

// CatalogReader reads stored catalogs. Returned catalogs are shared and
// must not be modified.
type CatalogReader interface {
	Get(ctx context.Context, catalogName string) (*catalog.Catalog, error)
}
