package usecase

import (
	"context"

	"sdg-content-service/internal/contextkeys"
	"sdg-content-service/internal/core/port"
)

// ToggleBookmarkUseCase flips the bookmark state of a business and returns
// the new state.
type ToggleBookmarkUseCase struct {
	bookmarks port.BookmarkRepositoryPort
}

func NewToggleBookmarkUseCase(bookmarks port.BookmarkRepositoryPort) *ToggleBookmarkUseCase {
	return &ToggleBookmarkUseCase{bookmarks: bookmarks}
}

func (uc *ToggleBookmarkUseCase) Execute(ctx context.Context, businessID int64) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "ToggleBookmark",
		"business_id": businessID,
	})

	bookmarked, err := uc.bookmarks.Toggle(ctx, businessID)
	if err != nil {
		logger.Error("Failed to toggle bookmark", err, nil)
		return false, err
	}
	logger.Debug("Bookmark toggled", port.Fields{"bookmarked": bookmarked})
	return bookmarked, nil
}
