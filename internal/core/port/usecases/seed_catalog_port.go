package usecases

import (
	"context"

	"sdg-content-service/internal/core/domain"
)

// SeedCatalogUseCasePort bulk-loads a catalog artifact into the store.
type SeedCatalogUseCasePort interface {
	Execute(ctx context.Context) (*domain.SeedSummary, error)
}
