package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"sdg-content-service/internal/contextkeys"
	"sdg-content-service/internal/core/domain"
	"sdg-content-service/internal/core/port"
)

// BookmarkRepository implements BookmarkRepositoryPort for PostgreSQL.
type BookmarkRepository struct {
	pool *pgxpool.Pool
}

func NewBookmarkRepository(pool *pgxpool.Pool) (*BookmarkRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &BookmarkRepository{pool: pool}, nil
}

// Toggle flips the bookmark state inside one transaction so concurrent
// toggles for the same business cannot double-insert.
func (r *BookmarkRepository) Toggle(ctx context.Context, businessID int64) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "BookmarkRepository",
		"business_id": businessID,
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM bookmarks WHERE business_id = $1)`, businessID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark state: %w", err)
	}

	if exists {
		if _, err := tx.Exec(ctx, `DELETE FROM bookmarks WHERE business_id = $1`, businessID); err != nil {
			return false, fmt.Errorf("failed to remove bookmark: %w", err)
		}
	} else {
		if _, err := tx.Exec(ctx,
			`INSERT INTO bookmarks (business_id) VALUES ($1) ON CONFLICT (business_id) DO NOTHING`,
			businessID,
		); err != nil {
			return false, fmt.Errorf("failed to add bookmark: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit bookmark toggle: %w", err)
	}

	logger.Debug("Bookmark state changed", port.Fields{"bookmarked": !exists})
	return !exists, nil
}

// ListBookmarked returns bookmarked businesses, most recently saved first.
func (r *BookmarkRepository) ListBookmarked(ctx context.Context) ([]domain.Business, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM businesses b
		INNER JOIN bookmarks bk ON b.id = bk.business_id
		ORDER BY bk.created_at DESC`,
		prefixColumns("b", businessColumns),
	)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarked businesses: %w", err)
	}
	return collectBusinesses(rows)
}
