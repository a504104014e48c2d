package sdgfetcher

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"

	"sdg-content-service/internal/constants"
)

// SDGFetcherAdapter owns all interactions with the source site. The parent
// collector carries the rate limit; every request runs on a clone so the
// limit is shared across the whole run.
type SDGFetcherAdapter struct {
	collector *colly.Collector
	baseURL   string
}

// NewSDGFetcherAdapter builds the parent collector. delay is the strict
// minimum gap between two requests to the site; keep it as-is, it is a
// politeness control against the source, not a performance knob.
func NewSDGFetcherAdapter(baseURL string, delay time.Duration) (*SDGFetcherAdapter, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("SDGFetcherAdapter: invalid base URL %q", baseURL)
	}

	c := colly.NewCollector(
		colly.AllowedDomains(parsed.Host, "www."+parsed.Host),
		colly.AllowURLRevisit(),
		colly.UserAgent(constants.UserAgent),
	)

	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  "*" + parsed.Host,
		Parallelism: 1,
		Delay:       delay,
	}); err != nil {
		return nil, fmt.Errorf("SDGFetcherAdapter: failed to set limit rule: %w", err)
	}

	return &SDGFetcherAdapter{
		collector: c,
		baseURL:   baseURL,
	}, nil
}
