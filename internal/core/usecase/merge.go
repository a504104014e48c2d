package usecase

import (
	"time"

	"sdg-content-service/internal/core/domain"
)

// mergeBusiness combines a listing record with its detail fragment into the
// final normalized record. Field precedence is load-bearing: it encodes which
// of the two source views is more trustworthy per field.
func mergeBusiness(listing domain.ListingItem, detail *domain.DetailFragment, now time.Time) domain.Business {
	name := detail.Name
	if name == "" {
		name = listing.Name
	}
	if domain.IsGenericName(name) {
		name = listing.Name
	}
	if domain.IsGenericName(name) {
		name = domain.PlaceholderName(listing.ID)
	}

	gallery := detail.GalleryURLs
	if gallery == nil {
		gallery = []string{}
	}

	// Primary display image: first gallery shot, else the detail-page logo,
	// else whatever the listing card showed.
	posterURL := ""
	if len(gallery) > 0 {
		posterURL = gallery[0]
	} else if detail.LogoURL != "" {
		posterURL = detail.LogoURL
	} else {
		posterURL = listing.LogoURL
	}

	logoURL := detail.LogoURL
	if logoURL == "" {
		logoURL = listing.LogoURL
	}

	state := detail.State
	if state == "" {
		state = "CA"
	}

	return domain.Business{
		ID:            listing.ID,
		Name:          name,
		Section:       listing.Section,
		Address:       detail.Address,
		City:          detail.City,
		Neighborhood:  detail.Neighborhood,
		State:         state,
		Zip:           detail.Zip,
		Phone:         detail.Phone,
		Website:       detail.Website,
		LogoURL:       logoURL,
		PosterURL:     posterURL,
		BannerURL:     detail.BannerURL,
		QRCodeURL:     detail.QRCodeURL,
		GalleryURLs:   gallery,
		GoogleMapsURL: detail.GoogleMapsURL,
		FacebookURL:   detail.FacebookURL,
		InstagramURL:  detail.InstagramURL,
		YelpURL:       detail.YelpURL,
		Description:   detail.Description,
		Categories:    []string{},
		LikeCount:     listing.LikeCount,
		IsHot:         false,
		IsFree:        false,
		IsAd:          listing.IsAd,
		OrderURL:      detail.OrderURL,
		FetchedAt:     now,
	}
}

// fallbackBusiness builds a degraded record from listing data alone, used
// when the detail page could not be fetched. No listing is ever dropped from
// the output because its detail fetch failed.
func fallbackBusiness(listing domain.ListingItem, now time.Time) domain.Business {
	return domain.Business{
		ID:          listing.ID,
		Name:        listing.Name,
		Section:     listing.Section,
		State:       "CA",
		LogoURL:     listing.LogoURL,
		PosterURL:   listing.LogoURL,
		GalleryURLs: []string{},
		Categories:  []string{},
		LikeCount:   listing.LikeCount,
		IsAd:        listing.IsAd,
		FetchedAt:   now,
	}
}
