package port

import (
	"context"

	"sdg-content-service/internal/core/domain"
)

// CatalogWriterPort persists the final catalog artifact. The write happens
// exactly once, at the end of a successful run.
type CatalogWriterPort interface {
	Write(ctx context.Context, catalog domain.Catalog) error
}

// CatalogReaderPort loads a previously written catalog artifact. An
// implementation validates the raw document against the feed contract before
// unmarshaling.
type CatalogReaderPort interface {
	Read(ctx context.Context) (*domain.Catalog, error)
}
