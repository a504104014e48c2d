package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sdg-content-service/internal/core/domain"
	"sdg-content-service/internal/core/port/usecases"
)

// BusinessHandler serves the catalog endpoints.
type BusinessHandler struct {
	findUseCase    usecases.FindBusinessesUseCasePort
	detailsUseCase usecases.GetBusinessDetailsUseCasePort
	searchUseCase  usecases.SearchBusinessesUseCasePort
	statsUseCase   usecases.GetCatalogStatsUseCasePort
}

func NewBusinessHandler(
	findUseCase usecases.FindBusinessesUseCasePort,
	detailsUseCase usecases.GetBusinessDetailsUseCasePort,
	searchUseCase usecases.SearchBusinessesUseCasePort,
	statsUseCase usecases.GetCatalogStatsUseCasePort,
) *BusinessHandler {
	return &BusinessHandler{
		findUseCase:    findUseCase,
		detailsUseCase: detailsUseCase,
		searchUseCase:  searchUseCase,
		statsUseCase:   statsUseCase,
	}
}

// FindBusinesses handles GET /api/v1/businesses.
func (h *BusinessHandler) FindBusinesses(w http.ResponseWriter, r *http.Request) {
	limit, err := GetIntQueryParam(r, "limit", 0)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	offset, err := GetIntQueryParam(r, "offset", 0)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	q := r.URL.Query()
	filter := domain.BusinessFilter{
		Section:      q.Get("section"),
		Filter:       q.Get("filter"),
		City:         q.Get("city"),
		Neighborhood: q.Get("neighborhood"),
		Category:     q.Get("category"),
		Limit:        limit,
		Offset:       offset,
	}

	items, err := h.findUseCase.Execute(r.Context(), filter)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, newBusinessListResponse(items))
}

// GetBusinessDetails handles GET /api/v1/businesses/{businessID}.
func (h *BusinessHandler) GetBusinessDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "businessID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "business id must be an integer")
		return
	}

	business, err := h.detailsUseCase.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessNotFound) {
			WriteJSONError(w, http.StatusNotFound, "business not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "failed to load business")
		return
	}
	RespondWithJSON(w, http.StatusOK, business)
}

// SearchBusinesses handles GET /api/v1/businesses/search?q=...
func (h *BusinessHandler) SearchBusinesses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, err := GetIntQueryParam(r, "limit", 0)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}

	items, err := h.searchUseCase.Execute(r.Context(), query, limit)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, newBusinessListResponse(items))
}

// GetBusinessesByCity handles GET /api/v1/cities/{city}/businesses.
func (h *BusinessHandler) GetBusinessesByCity(w http.ResponseWriter, r *http.Request) {
	limit, err := GetIntQueryParam(r, "limit", 0)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}

	filter := domain.BusinessFilter{
		City:  chi.URLParam(r, "city"),
		Limit: limit,
	}
	items, err := h.findUseCase.Execute(r.Context(), filter)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "failed to load businesses")
		return
	}
	RespondWithJSON(w, http.StatusOK, newBusinessListResponse(items))
}

// GetStats handles GET /api/v1/stats.
func (h *BusinessHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUseCase.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	RespondWithJSON(w, http.StatusOK, stats)
}

// BookmarkHandler serves the bookmark endpoints.
type BookmarkHandler struct {
	toggleUseCase usecases.ToggleBookmarkUseCasePort
	listUseCase   usecases.GetBookmarkedUseCasePort
}

func NewBookmarkHandler(
	toggleUseCase usecases.ToggleBookmarkUseCasePort,
	listUseCase usecases.GetBookmarkedUseCasePort,
) *BookmarkHandler {
	return &BookmarkHandler{
		toggleUseCase: toggleUseCase,
		listUseCase:   listUseCase,
	}
}

// ToggleBookmark handles POST /api/v1/bookmarks/{businessID}/toggle.
func (h *BookmarkHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "businessID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "business id must be an integer")
		return
	}

	bookmarked, err := h.toggleUseCase.Execute(r.Context(), id)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "failed to toggle bookmark")
		return
	}
	RespondWithJSON(w, http.StatusOK, ToggleBookmarkResponse{
		BusinessID: id,
		Bookmarked: bookmarked,
	})
}

// GetBookmarked handles GET /api/v1/bookmarks.
func (h *BookmarkHandler) GetBookmarked(w http.ResponseWriter, r *http.Request) {
	items, err := h.listUseCase.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "failed to load bookmarks")
		return
	}
	RespondWithJSON(w, http.StatusOK, newBusinessListResponse(items))
}
