package usecases

import (
	"context"

	"sdg-content-service/internal/core/domain"
)

// ScrapeCatalogUseCasePort runs one full scrape of the source site and writes
// the catalog artifact.
type ScrapeCatalogUseCasePort interface {
	Execute(ctx context.Context) (*domain.ScrapeSummary, error)
}
