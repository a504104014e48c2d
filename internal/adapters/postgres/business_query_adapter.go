package postgres_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sdg-content-service/internal/core/domain"
)

// businessColumns is the shared select list; scanBusiness scans in this order.
const businessColumns = `
	id, name, section, address, city, neighborhood, state, zip,
	phone, website, logo_url, poster_url, banner_url, qr_code_url,
	gallery_urls, google_maps_url, facebook_url, instagram_url, yelp_url,
	description, categories, like_count, is_hot, is_free, is_ad,
	order_url, fetched_at`

// BusinessQueryAdapter implements BusinessQueryPort for PostgreSQL.
type BusinessQueryAdapter struct {
	pool *pgxpool.Pool
}

func NewBusinessQueryAdapter(pool *pgxpool.Pool) (*BusinessQueryAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &BusinessQueryAdapter{pool: pool}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// prefixColumns qualifies every column in a select list with a table alias,
// for queries that join.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

func scanBusiness(row rowScanner) (domain.Business, error) {
	var b domain.Business
	var galleryJSON, categoriesJSON []byte
	err := row.Scan(
		&b.ID, &b.Name, &b.Section, &b.Address, &b.City, &b.Neighborhood, &b.State, &b.Zip,
		&b.Phone, &b.Website, &b.LogoURL, &b.PosterURL, &b.BannerURL, &b.QRCodeURL,
		&galleryJSON, &b.GoogleMapsURL, &b.FacebookURL, &b.InstagramURL, &b.YelpURL,
		&b.Description, &categoriesJSON, &b.LikeCount, &b.IsHot, &b.IsFree, &b.IsAd,
		&b.OrderURL, &b.FetchedAt,
	)
	if err != nil {
		return domain.Business{}, err
	}
	if err := json.Unmarshal(galleryJSON, &b.GalleryURLs); err != nil {
		b.GalleryURLs = []string{}
	}
	if err := json.Unmarshal(categoriesJSON, &b.Categories); err != nil {
		b.Categories = []string{}
	}
	return b, nil
}

func collectBusinesses(rows pgx.Rows) ([]domain.Business, error) {
	defer rows.Close()
	businesses := make([]domain.Business, 0)
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}
	return businesses, nil
}

// Find runs the scoped, paginated catalog listing, ordered by like count.
func (a *BusinessQueryAdapter) Find(ctx context.Context, filter domain.BusinessFilter) ([]domain.Business, error) {
	conditions := []string{"1=1"}
	args := make([]interface{}, 0)
	argID := 1

	if filter.Section != "" {
		conditions = append(conditions, fmt.Sprintf("section = $%d", argID))
		args = append(args, filter.Section)
		argID++
	}
	switch filter.Filter {
	case "hot":
		conditions = append(conditions, "is_hot = TRUE")
	case "free":
		conditions = append(conditions, "is_free = TRUE")
	}
	if filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("city = $%d", argID))
		args = append(args, filter.City)
		argID++
	}
	if filter.Neighborhood != "" {
		conditions = append(conditions, fmt.Sprintf("neighborhood = $%d", argID))
		args = append(args, filter.Neighborhood)
		argID++
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("categories::text ILIKE $%d", argID))
		args = append(args, "%"+filter.Category+"%")
		argID++
	}

	query := fmt.Sprintf(`
		SELECT %s FROM businesses
		WHERE %s
		ORDER BY like_count DESC
		LIMIT $%d OFFSET $%d`,
		businessColumns, strings.Join(conditions, " AND "), argID, argID+1,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	return collectBusinesses(rows)
}

func (a *BusinessQueryAdapter) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE id = $1`, businessColumns)

	b, err := scanBusiness(a.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business %d: %w", id, err)
	}
	return &b, nil
}

// Search runs a substring match across name, address, city, description and
// categories, ordered by like count.
func (a *BusinessQueryAdapter) Search(ctx context.Context, searchQuery string, limit int) ([]domain.Business, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM businesses
		WHERE name ILIKE $1 OR address ILIKE $1 OR city ILIKE $1
			OR description ILIKE $1 OR categories::text ILIKE $1
		ORDER BY like_count DESC
		LIMIT $2`, businessColumns,
	)

	rows, err := a.pool.Query(ctx, query, "%"+searchQuery+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search businesses: %w", err)
	}
	return collectBusinesses(rows)
}

func (a *BusinessQueryAdapter) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	stats := &domain.CatalogStats{BySection: make(map[string]int)}

	if err := a.pool.QueryRow(ctx, `SELECT COUNT(*) FROM businesses`).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("failed to count businesses: %w", err)
	}

	rows, err := a.pool.Query(ctx, `SELECT section, COUNT(*) FROM businesses GROUP BY section`)
	if err != nil {
		return nil, fmt.Errorf("failed to count businesses by section: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var section string
		var count int
		if err := rows.Scan(&section, &count); err != nil {
			return nil, fmt.Errorf("failed to scan section count: %w", err)
		}
		stats.BySection[section] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}
	return stats, nil
}
