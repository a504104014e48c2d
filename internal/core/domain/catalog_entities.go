package domain

import "errors"

// ErrBusinessNotFound is returned by query ports when no record matches.
var ErrBusinessNotFound = errors.New("business not found")

// ScrapeSummary aggregates the statistics printed after a scrape run.
type ScrapeSummary struct {
	Total       int
	WithImages  int
	WithNames   int
	WithAddress int
	WithPhone   int
}

// SeedSummary aggregates the result of one bulk load into the store.
type SeedSummary struct {
	Total    int
	Inserted int
	Updated  int
	Failed   int
}

// BusinessFilter carries the query parameters of a paginated catalog lookup.
// Zero values mean "no constraint" for the string fields.
type BusinessFilter struct {
	Section      string
	Filter       string // "hot" or "free"
	City         string
	Neighborhood string
	Category     string
	Limit        int
	Offset       int
}

// CatalogStats describes what is currently loaded in the store.
type CatalogStats struct {
	Total     int            `json:"total"`
	BySection map[string]int `json:"bySection"`
}
