package usecase

import (
	"context"

	"sdg-content-service/internal/core/domain"
	"sdg-content-service/internal/core/port"
)

// GetBusinessDetailsUseCase serves a single business by id.
type GetBusinessDetailsUseCase struct {
	query port.BusinessQueryPort
}

func NewGetBusinessDetailsUseCase(query port.BusinessQueryPort) *GetBusinessDetailsUseCase {
	return &GetBusinessDetailsUseCase{query: query}
}

func (uc *GetBusinessDetailsUseCase) Execute(ctx context.Context, id int64) (*domain.Business, error) {
	return uc.query.GetByID(ctx, id)
}
