package usecase

import (
	"context"
	"fmt"
	"strings"

	"sdg-content-service/internal/core/domain"
	"sdg-content-service/internal/core/port"
)

// SearchBusinessesUseCase serves the free-text search across name, address,
// city, description and categories.
type SearchBusinessesUseCase struct {
	query port.BusinessQueryPort
}

func NewSearchBusinessesUseCase(query port.BusinessQueryPort) *SearchBusinessesUseCase {
	return &SearchBusinessesUseCase{query: query}
}

func (uc *SearchBusinessesUseCase) Execute(ctx context.Context, query string, limit int) ([]domain.Business, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search businesses: query is required")
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return uc.query.Search(ctx, query, limit)
}
