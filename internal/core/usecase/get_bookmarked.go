package usecase

import (
	"context"

	"sdg-content-service/internal/core/domain"
	"sdg-content-service/internal/core/port"
)

// GetBookmarkedUseCase lists the bookmarked businesses, most recent first.
type GetBookmarkedUseCase struct {
	bookmarks port.BookmarkRepositoryPort
}

func NewGetBookmarkedUseCase(bookmarks port.BookmarkRepositoryPort) *GetBookmarkedUseCase {
	return &GetBookmarkedUseCase{bookmarks: bookmarks}
}

func (uc *GetBookmarkedUseCase) Execute(ctx context.Context) ([]domain.Business, error) {
	return uc.bookmarks.ListBookmarked(ctx)
}
