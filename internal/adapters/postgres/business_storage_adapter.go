package postgres_adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"sdg-content-service/internal/contextkeys"
	"sdg-content-service/internal/core/domain"
	"sdg-content-service/internal/core/port"
)

// BusinessStorageAdapter implements BusinessStoragePort for PostgreSQL.
type BusinessStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewBusinessStorageAdapter(pool *pgxpool.Pool) (*BusinessStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &BusinessStorageAdapter{pool: pool}, nil
}

// EnsureSchema creates the businesses and bookmarks tables if they do not
// exist. The column set mirrors the catalog artifact one-to-one.
func (a *BusinessStorageAdapter) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS businesses (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			section TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			neighborhood TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			zip TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			website TEXT NOT NULL DEFAULT '',
			logo_url TEXT NOT NULL DEFAULT '',
			poster_url TEXT NOT NULL DEFAULT '',
			banner_url TEXT NOT NULL DEFAULT '',
			qr_code_url TEXT NOT NULL DEFAULT '',
			gallery_urls JSONB NOT NULL DEFAULT '[]',
			google_maps_url TEXT NOT NULL DEFAULT '',
			facebook_url TEXT NOT NULL DEFAULT '',
			instagram_url TEXT NOT NULL DEFAULT '',
			yelp_url TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			categories JSONB NOT NULL DEFAULT '[]',
			like_count INTEGER NOT NULL DEFAULT 0,
			is_hot BOOLEAN NOT NULL DEFAULT FALSE,
			is_free BOOLEAN NOT NULL DEFAULT FALSE,
			is_ad BOOLEAN NOT NULL DEFAULT FALSE,
			order_url TEXT NOT NULL DEFAULT '',
			fetched_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS bookmarks (
			business_id BIGINT PRIMARY KEY REFERENCES businesses(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_businesses_section ON businesses(section);
		CREATE INDEX IF NOT EXISTS idx_businesses_city ON businesses(city);
		CREATE INDEX IF NOT EXISTS idx_businesses_neighborhood ON businesses(neighborhood);
		CREATE INDEX IF NOT EXISTS idx_businesses_like_count ON businesses(like_count DESC);
	`
	if _, err := a.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure businesses schema: %w", err)
	}
	return nil
}

// Upsert inserts or updates one business keyed by id and reports whether the
// row was newly inserted (xmax = 0 only on fresh rows).
func (a *BusinessStorageAdapter) Upsert(ctx context.Context, b domain.Business) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "BusinessStorageAdapter",
		"business_id": b.ID,
	})

	galleryJSON, err := json.Marshal(b.GalleryURLs)
	if err != nil {
		return false, fmt.Errorf("failed to marshal gallery urls for %d: %w", b.ID, err)
	}
	categoriesJSON, err := json.Marshal(b.Categories)
	if err != nil {
		return false, fmt.Errorf("failed to marshal categories for %d: %w", b.ID, err)
	}

	const query = `
		INSERT INTO businesses (
			id, name, section, address, city, neighborhood, state, zip,
			phone, website, logo_url, poster_url, banner_url, qr_code_url,
			gallery_urls, google_maps_url, facebook_url, instagram_url, yelp_url,
			description, categories, like_count, is_hot, is_free, is_ad,
			order_url, fetched_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25,
			$26, $27, CURRENT_TIMESTAMP
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			section = EXCLUDED.section,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			neighborhood = EXCLUDED.neighborhood,
			state = EXCLUDED.state,
			zip = EXCLUDED.zip,
			phone = EXCLUDED.phone,
			website = EXCLUDED.website,
			logo_url = EXCLUDED.logo_url,
			poster_url = EXCLUDED.poster_url,
			banner_url = EXCLUDED.banner_url,
			qr_code_url = EXCLUDED.qr_code_url,
			gallery_urls = EXCLUDED.gallery_urls,
			google_maps_url = EXCLUDED.google_maps_url,
			facebook_url = EXCLUDED.facebook_url,
			instagram_url = EXCLUDED.instagram_url,
			yelp_url = EXCLUDED.yelp_url,
			description = EXCLUDED.description,
			categories = EXCLUDED.categories,
			like_count = EXCLUDED.like_count,
			is_hot = EXCLUDED.is_hot,
			is_free = EXCLUDED.is_free,
			is_ad = EXCLUDED.is_ad,
			order_url = EXCLUDED.order_url,
			fetched_at = EXCLUDED.fetched_at,
			updated_at = CURRENT_TIMESTAMP
		RETURNING (xmax = 0) AS inserted
	`

	var inserted bool
	err = a.pool.QueryRow(ctx, query,
		b.ID, b.Name, b.Section, b.Address, b.City, b.Neighborhood, b.State, b.Zip,
		b.Phone, b.Website, b.LogoURL, b.PosterURL, b.BannerURL, b.QRCodeURL,
		galleryJSON, b.GoogleMapsURL, b.FacebookURL, b.InstagramURL, b.YelpURL,
		b.Description, categoriesJSON, b.LikeCount, b.IsHot, b.IsFree, b.IsAd,
		b.OrderURL, b.FetchedAt,
	).Scan(&inserted)
	if err != nil {
		logger.Error("Failed to upsert business", err, nil)
		return false, fmt.Errorf("failed to upsert business %d: %w", b.ID, err)
	}

	return inserted, nil
}
