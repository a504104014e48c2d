package port

import (
	"context"

	"sdg-content-service/internal/core/domain"
)

// BusinessStoragePort is the write side of the relational store.
type BusinessStoragePort interface {
	// EnsureSchema creates the businesses/bookmarks tables if they do not exist.
	EnsureSchema(ctx context.Context) error

	// Upsert inserts or updates one business keyed by id. It reports whether
	// the row was newly inserted. Last-write-wins on duplicate ids: an ad and
	// an organic record sharing an id collapse into one row here.
	Upsert(ctx context.Context, business domain.Business) (inserted bool, err error)
}

// BusinessQueryPort is the read side of the relational store.
type BusinessQueryPort interface {
	Find(ctx context.Context, filter domain.BusinessFilter) ([]domain.Business, error)
	GetByID(ctx context.Context, id int64) (*domain.Business, error)

	// Search runs a substring match across name, address, city, description
	// and categories, ordered by like count.
	Search(ctx context.Context, query string, limit int) ([]domain.Business, error)

	Stats(ctx context.Context) (*domain.CatalogStats, error)
}

// BookmarkRepositoryPort stores the user's bookmarked business ids.
type BookmarkRepositoryPort interface {
	// Toggle flips the bookmark state for a business and returns the new state.
	Toggle(ctx context.Context, businessID int64) (bookmarked bool, err error)

	// ListBookmarked returns bookmarked businesses, most recently saved first.
	ListBookmarked(ctx context.Context) ([]domain.Business, error)
}
