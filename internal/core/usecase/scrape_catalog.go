package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sdg-content-service/internal/constants"
	"sdg-content-service/internal/contextkeys"
	"sdg-content-service/internal/core/domain"
	"sdg-content-service/internal/core/port"
)

// ScrapeCatalogUseCase runs the whole pipeline: listing pages for every
// section and filter view, then one detail page per accumulated listing,
// merged into the final catalog and written out once at the end.
type ScrapeCatalogUseCase struct {
	fetcher port.CatalogFetcherPort
	writer  port.CatalogWriterPort
}

func NewScrapeCatalogUseCase(fetcher port.CatalogFetcherPort, writer port.CatalogWriterPort) *ScrapeCatalogUseCase {
	return &ScrapeCatalogUseCase{
		fetcher: fetcher,
		writer:  writer,
	}
}

// listingAccumulator keeps listings keyed by (id, isAd) in first-insertion
// order. Detail pages are later fetched in exactly this order.
type listingAccumulator struct {
	index map[domain.ListingKey]int
	items []domain.ListingItem
}

func newListingAccumulator() *listingAccumulator {
	return &listingAccumulator{index: make(map[domain.ListingKey]int)}
}

// set inserts or overwrites; an overwrite keeps the original position.
func (acc *listingAccumulator) set(item domain.ListingItem) {
	if i, ok := acc.index[item.Key()]; ok {
		acc.items[i] = item
		return
	}
	acc.index[item.Key()] = len(acc.items)
	acc.items = append(acc.items, item)
}

// setIfAbsent inserts only when the key is new. Filter pages use this so a
// business already seen in its own section keeps the section's data.
func (acc *listingAccumulator) setIfAbsent(item domain.ListingItem) {
	if _, ok := acc.index[item.Key()]; !ok {
		acc.set(item)
	}
}

// Execute performs one full scrape run sequentially. A failed listing page
// skips that section; a failed detail page degrades to a listing-only record;
// only a failed artifact write fails the run.
func (uc *ScrapeCatalogUseCase) Execute(ctx context.Context) (*domain.ScrapeSummary, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ScrapeCatalog",
	})

	acc := newListingAccumulator()

	logger.Info("Fetching listing pages", port.Fields{"sections": constants.Sections})
	for _, section := range constants.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, err := uc.fetcher.FetchListings(ctx, section, section)
		if err != nil {
			logger.Warn("Skipping section after fetch failure", port.Fields{
				"section": section,
				"error":   err.Error(),
			})
			continue
		}
		for _, item := range items {
			acc.set(item)
		}
	}

	logger.Info("Fetching filter pages", port.Fields{"filters": constants.FilterPages})
	for _, filter := range constants.FilterPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, err := uc.fetcher.FetchListings(ctx, filter, constants.FilterPagesSection)
		if err != nil {
			logger.Warn("Skipping filter page after fetch failure", port.Fields{
				"filter": filter,
				"error":  err.Error(),
			})
			continue
		}
		for _, item := range items {
			acc.setIfAbsent(item)
		}
	}

	total := len(acc.items)
	logger.Info("Listing accumulation finished", port.Fields{"unique_listings": total})

	businesses := make([]domain.Business, 0, total)
	for i, listing := range acc.items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		itemLogger := logger.WithFields(port.Fields{
			"business_id": listing.ID,
			"is_ad":       listing.IsAd,
			"progress":    fmt.Sprintf("%d/%d", i+1, total),
		})

		detail, err := uc.fetcher.FetchDetails(ctx, listing.ID, listing.IsAd)
		if err != nil || detail == nil {
			itemLogger.Warn("Detail fetch failed, emitting listing-only record", port.Fields{
				"error": errString(err),
			})
			businesses = append(businesses, fallbackBusiness(listing, time.Now().UTC()))
			continue
		}

		business := mergeBusiness(listing, detail, time.Now().UTC())
		businesses = append(businesses, business)
		itemLogger.Debug("Merged business record", port.Fields{
			"name":       business.Name,
			"gallery":    len(business.GalleryURLs),
			"has_poster": business.PosterURL != "",
		})
	}

	catalog := domain.Catalog{
		Businesses: businesses,
		ScrapedAt:  time.Now().UTC(),
		Total:      len(businesses),
	}
	if err := uc.writer.Write(ctx, catalog); err != nil {
		return nil, fmt.Errorf("scrape catalog: failed to write artifact: %w", err)
	}

	summary := summarize(businesses)
	logger.Info("Scrape run finished", port.Fields{
		"total":        summary.Total,
		"with_images":  summary.WithImages,
		"with_names":   summary.WithNames,
		"with_address": summary.WithAddress,
		"with_phone":   summary.WithPhone,
	})
	return summary, nil
}

func summarize(businesses []domain.Business) *domain.ScrapeSummary {
	s := &domain.ScrapeSummary{Total: len(businesses)}
	for _, b := range businesses {
		if b.PosterURL != "" && !strings.Contains(b.PosterURL, "poster0") {
			s.WithImages++
		}
		if b.Name != "" && !strings.HasPrefix(b.Name, "Business ") {
			s.WithNames++
		}
		if b.Address != "" {
			s.WithAddress++
		}
		if b.Phone != "" {
			s.WithPhone++
		}
	}
	return s
}

func errString(err error) string {
	if err == nil {
		return "empty detail fragment"
	}
	return err.Error()
}
