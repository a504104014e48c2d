package usecase

import (
	"context"
	"testing"

	"sdg-content-service/internal/core/domain"
)

type fakeQuery struct {
	gotFilter domain.BusinessFilter
	gotQuery  string
	gotLimit  int
}

func (q *fakeQuery) Find(_ context.Context, filter domain.BusinessFilter) ([]domain.Business, error) {
	q.gotFilter = filter
	return nil, nil
}

func (q *fakeQuery) GetByID(_ context.Context, id int64) (*domain.Business, error) {
	return nil, domain.ErrBusinessNotFound
}

func (q *fakeQuery) Search(_ context.Context, query string, limit int) ([]domain.Business, error) {
	q.gotQuery = query
	q.gotLimit = limit
	return nil, nil
}

func (q *fakeQuery) Stats(_ context.Context) (*domain.CatalogStats, error) {
	return &domain.CatalogStats{}, nil
}

func TestFindBusinessesPaginationDefaults(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults applied", 0, 0, defaultPageSize, 0},
		{"limit capped", 1000, 0, maxPageSize, 0},
		{"negative offset reset", 10, -5, 10, 0},
		{"valid values pass through", 25, 50, 25, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := &fakeQuery{}
			uc := NewFindBusinessesUseCase(query)
			_, err := uc.Execute(context.Background(), domain.BusinessFilter{
				Limit:  tt.limit,
				Offset: tt.offset,
			})
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if query.gotFilter.Limit != tt.wantLimit || query.gotFilter.Offset != tt.wantOffset {
				t.Errorf("filter = {limit %d, offset %d}, want {%d, %d}",
					query.gotFilter.Limit, query.gotFilter.Offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestFindBusinessesRejectsUnknownFilter(t *testing.T) {
	uc := NewFindBusinessesUseCase(&fakeQuery{})
	for _, filter := range []string{"hot", "free"} {
		if _, err := uc.Execute(context.Background(), domain.BusinessFilter{Filter: filter}); err != nil {
			t.Errorf("filter %q rejected: %v", filter, err)
		}
	}
	if _, err := uc.Execute(context.Background(), domain.BusinessFilter{Filter: "cheap"}); err == nil {
		t.Error("unknown filter accepted, want error")
	}
}

func TestSearchBusinessesValidation(t *testing.T) {
	query := &fakeQuery{}
	uc := NewSearchBusinessesUseCase(query)

	if _, err := uc.Execute(context.Background(), "   ", 10); err == nil {
		t.Error("blank query accepted, want error")
	}

	if _, err := uc.Execute(context.Background(), "  dim sum  ", 0); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if query.gotQuery != "dim sum" {
		t.Errorf("query = %q, want trimmed", query.gotQuery)
	}
	if query.gotLimit != defaultPageSize {
		t.Errorf("limit = %d, want default %d", query.gotLimit, defaultPageSize)
	}
}
