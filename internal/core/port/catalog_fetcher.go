package port

import (
	"context"

	"sdg-content-service/internal/core/domain"
)

// CatalogFetcherPort groups all operations against the source site.
type CatalogFetcherPort interface {
	// FetchListings fetches one index page and extracts its business cards.
	// pageKey is the value of the "s" query parameter (a section or a filter
	// page); section is the tag recorded on each extracted listing.
	FetchListings(ctx context.Context, pageKey, section string) ([]domain.ListingItem, error)

	// FetchDetails fetches a single business detail page. The ad variant of a
	// listing lives at a different path than the organic one.
	FetchDetails(ctx context.Context, id int64, isAd bool) (*domain.DetailFragment, error)
}
