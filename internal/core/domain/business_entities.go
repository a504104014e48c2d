package domain

import (
	"fmt"
	"time"
)

// ListingItem is the lightweight record extracted from an index/listing page.
// It only carries what the card markup exposes; the detail page fills in the rest.
type ListingItem struct {
	ID        int64
	Name      string
	LogoURL   string
	LikeCount int
	IsAd      bool
	Section   string
}

// ListingKey identifies a listing across pages. The same numeric id can appear
// as both an organic and an advertised entry; those are distinct businesses
// from the source site's point of view and must never collapse into one.
type ListingKey struct {
	ID   int64
	IsAd bool
}

// Key returns the dedup key for this listing.
func (l ListingItem) Key() ListingKey {
	return ListingKey{ID: l.ID, IsAd: l.IsAd}
}

// DetailFragment holds everything extracted from a single detail page.
// Every field is best-effort: an empty value means "not found on this page",
// never a parse error.
type DetailFragment struct {
	Name          string
	Phone         string
	Website       string
	Address       string
	City          string
	Neighborhood  string
	State         string
	Zip           string
	GoogleMapsURL string
	FacebookURL   string
	InstagramURL  string
	YelpURL       string
	LogoURL       string
	GalleryURLs   []string
	BannerURL     string
	QRCodeURL     string
	Description   string
	OrderURL      string
}

// Business is the final normalized record emitted into the catalog artifact.
// The JSON field names are the contract consumed by the seeder and the mobile
// app's bundled dataset; do not rename them.
type Business struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Section       string    `json:"section"`
	Address       string    `json:"address,omitempty"`
	City          string    `json:"city,omitempty"`
	Neighborhood  string    `json:"neighborhood,omitempty"`
	State         string    `json:"state,omitempty"`
	Zip           string    `json:"zip,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Website       string    `json:"website,omitempty"`
	LogoURL       string    `json:"logoUrl,omitempty"`
	PosterURL     string    `json:"posterUrl,omitempty"`
	BannerURL     string    `json:"bannerUrl,omitempty"`
	QRCodeURL     string    `json:"qrCodeUrl,omitempty"`
	GalleryURLs   []string  `json:"galleryUrls"`
	GoogleMapsURL string    `json:"googleMapsUrl,omitempty"`
	FacebookURL   string    `json:"facebookUrl,omitempty"`
	InstagramURL  string    `json:"instagramUrl,omitempty"`
	YelpURL       string    `json:"yelpUrl,omitempty"`
	Description   string    `json:"description,omitempty"`
	Categories    []string  `json:"categories"`
	LikeCount     int       `json:"likeCount"`
	IsHot         bool      `json:"isHot"`
	IsFree        bool      `json:"isFree"`
	IsAd          bool      `json:"isAd"`
	OrderURL      string    `json:"orderUrl,omitempty"`
	FetchedAt     time.Time `json:"fetchedAt"`
}

// Catalog is the output artifact: the full business set of one scrape run.
type Catalog struct {
	Businesses []Business `json:"businesses"`
	ScrapedAt  time.Time  `json:"scrapedAt"`
	Total      int        `json:"total"`
}

// PlaceholderName is the synthetic name used when no real business name
// survives extraction.
func PlaceholderName(id int64) string {
	return fmt.Sprintf("Business %d", id)
}
