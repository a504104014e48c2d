package usecases

import (
	"context"

	"sdg-content-service/internal/core/domain"
)

// FindBusinessesUseCasePort serves the paginated, filterable catalog listing.
type FindBusinessesUseCasePort interface {
	Execute(ctx context.Context, filter domain.BusinessFilter) ([]domain.Business, error)
}

// GetBusinessDetailsUseCasePort serves a single business by id.
type GetBusinessDetailsUseCasePort interface {
	Execute(ctx context.Context, id int64) (*domain.Business, error)
}

// SearchBusinessesUseCasePort serves the free-text search.
type SearchBusinessesUseCasePort interface {
	Execute(ctx context.Context, query string, limit int) ([]domain.Business, error)
}

// GetCatalogStatsUseCasePort reports totals for the loaded catalog.
type GetCatalogStatsUseCasePort interface {
	Execute(ctx context.Context) (*domain.CatalogStats, error)
}

// ToggleBookmarkUseCasePort flips the bookmark state for a business.
type ToggleBookmarkUseCasePort interface {
	Execute(ctx context.Context, businessID int64) (bool, error)
}

// GetBookmarkedUseCasePort lists the bookmarked businesses.
type GetBookmarkedUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Business, error)
}
