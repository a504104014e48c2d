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

// FetchDetails fetches one business detail page and extracts the partial
// record. A transport failure or non-2xx status is the only error; a page
// missing fields is not.
func (a *SDGFetcherAdapter) FetchDetails(ctx context.Context, id int64, isAd bool) (*domain.DetailFragment, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "SDGFetcherAdapter(FetchDetails)",
		"business_id": id,
		"is_ad":       isAd,
	})

	collector := a.collector.Clone()

	var fragment *domain.DetailFragment
	var responseErr error

	collector.OnRequest(func(r *colly.Request) {
		logger.Debug("Fetching detail page", port.Fields{"url": r.URL.String()})
	})

	collector.OnResponse(func(r *colly.Response) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
		if err != nil {
			responseErr = fmt.Errorf("sdg adapter: failed to parse detail page for id %d: %w", id, err)
			return
		}
		fragment = mapDetailPage(a.baseURL, doc)
	})

	collector.OnError(func(r *colly.Response, err error) {
		logger.Error("Failed to fetch detail page", err, port.Fields{
			"url":    r.Request.URL.String(),
			"status": r.StatusCode,
		})
		responseErr = fmt.Errorf("sdg adapter: request to %s failed with status %d: %w", r.Request.URL, r.StatusCode, err)
	})

	detailURL := fmt.Sprintf("%s/showpon.php?id=%d", a.baseURL, id)
	if isAd {
		detailURL = fmt.Sprintf("%s/adshowpon.php?id=%d", a.baseURL, id)
	}
	if err := collector.Visit(detailURL); err != nil {
		return nil, fmt.Errorf("sdg adapter: failed to visit %s: %w", detailURL, err)
	}
	collector.Wait()

	if responseErr != nil {
		return nil, responseErr
	}
	return fragment, nil
}
