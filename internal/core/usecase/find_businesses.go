package usecase

import (
	"context"
	"fmt"

	"sdg-content-service/internal/core/domain"
	"sdg-content-service/internal/core/port"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// FindBusinessesUseCase serves the paginated catalog listing with the
// section/filter/city/neighborhood/category scoping the mobile app uses.
type FindBusinessesUseCase struct {
	query port.BusinessQueryPort
}

func NewFindBusinessesUseCase(query port.BusinessQueryPort) *FindBusinessesUseCase {
	return &FindBusinessesUseCase{query: query}
}

func (uc *FindBusinessesUseCase) Execute(ctx context.Context, filter domain.BusinessFilter) ([]domain.Business, error) {
	if filter.Filter != "" && filter.Filter != "hot" && filter.Filter != "free" {
		return nil, fmt.Errorf("find businesses: unknown filter %q", filter.Filter)
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.query.Find(ctx, filter)
}
