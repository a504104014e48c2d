package usecase

import (
	"context"

	"sdg-content-service/internal/core/domain"
	"sdg-content-service/internal/core/port"
)

// GetCatalogStatsUseCase reports totals for the loaded catalog.
type GetCatalogStatsUseCase struct {
	query port.BusinessQueryPort
}

func NewGetCatalogStatsUseCase(query port.BusinessQueryPort) *GetCatalogStatsUseCase {
	return &GetCatalogStatsUseCase{query: query}
}

func (uc *GetCatalogStatsUseCase) Execute(ctx context.Context) (*domain.CatalogStats, error) {
	return uc.query.Stats(ctx)
}
