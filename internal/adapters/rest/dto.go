package rest

import "sdg-content-service/internal/core/domain"

// BusinessListResponse wraps a page of catalog results.
type BusinessListResponse struct {
	Items []domain.Business `json:"items"`
	Count int               `json:"count"`
}

// ToggleBookmarkResponse reports the new bookmark state.
type ToggleBookmarkResponse struct {
	BusinessID int64 `json:"businessId"`
	Bookmarked bool  `json:"bookmarked"`
}

func newBusinessListResponse(items []domain.Business) BusinessListResponse {
	if items == nil {
		items = []domain.Business{}
	}
	return BusinessListResponse{Items: items, Count: len(items)}
}
