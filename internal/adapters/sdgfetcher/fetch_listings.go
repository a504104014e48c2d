package sdgfetcher

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"sdg-content-service/internal/contextkeys"
	"sdg-content-service/internal/core/domain"
	"sdg-content-service/internal/core/port"
)

// FetchListings fetches one index page and extracts its business cards.
func (a *SDGFetcherAdapter) FetchListings(ctx context.Context, pageKey, section string) ([]domain.ListingItem, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SDGFetcherAdapter(FetchListings)",
		"page":      pageKey,
	})

	collector := a.collector.Clone()

	var items []domain.ListingItem
	var responseErr error

	collector.OnRequest(func(r *colly.Request) {
		logger.Debug("Fetching listing page", port.Fields{"url": r.URL.String()})
	})

	collector.OnResponse(func(r *colly.Response) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
		if err != nil {
			responseErr = fmt.Errorf("sdg adapter: failed to parse listing page %s: %w", pageKey, err)
			return
		}
		items = mapListingPage(a.baseURL, doc, section)
	})

	collector.OnError(func(r *colly.Response, err error) {
		logger.Error("Failed to fetch listing page", err, port.Fields{
			"url":    r.Request.URL.String(),
			"status": r.StatusCode,
		})
		responseErr = fmt.Errorf("sdg adapter: request to %s failed with status %d: %w", r.Request.URL, r.StatusCode, err)
	})

	pageURL := fmt.Sprintf("%s/index.php?s=%s", a.baseURL, pageKey)
	if err := collector.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("sdg adapter: failed to visit %s: %w", pageURL, err)
	}
	collector.Wait()

	if responseErr != nil {
		return nil, responseErr
	}

	logger.Info("Parsed listing page", port.Fields{
		"section": section,
		"items":   len(items),
	})
	return items, nil
}
