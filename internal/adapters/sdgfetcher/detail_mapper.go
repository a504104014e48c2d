package sdgfetcher

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"sdg-content-service/internal/core/domain"
)

// websiteExcludedDomains are hosts that never count as a business's own
// website: the source site itself is handled separately; the rest are social
// networks, maps and the tracking pixel, all extracted into their own fields.
var websiteExcludedDomains = []string{
	"google",
	"facebook",
	"instagram",
	"yelp",
	"histats",
	"goo.gl",
}

// mapDetailPage extracts a partial business record from one detail page.
// Every field is best-effort: precedence between candidate elements is
// first-match-wins unless noted, and a missing field stays empty without
// aborting the rest of the extraction.
func mapDetailPage(baseURL string, doc *goquery.Document) *domain.DetailFragment {
	result := &domain.DetailFragment{}
	ownSite := siteMarker(baseURL)

	result.Name = extractDetailName(doc)

	if phoneLink := doc.Find(`a[href^="tel:"]`).First(); phoneLink.Length() > 0 {
		href, _ := phoneLink.Attr("href")
		phone := strings.TrimPrefix(href, "tel:")
		phone = strings.ReplaceAll(phone, `\`, "")
		result.Phone = strings.TrimSpace(phone)
	}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if result.Website != "" {
			return
		}
		href, _ := a.Attr("href")
		if !strings.HasPrefix(href, "http") && !strings.HasPrefix(href, "www.") {
			return
		}
		if strings.Contains(href, ownSite) {
			return
		}
		for _, excluded := range websiteExcludedDomains {
			if strings.Contains(href, excluded) {
				return
			}
		}
		if strings.HasPrefix(href, "www.") {
			href = "https://" + href
		}
		result.Website = href
	})

	doc.Find(`a[href*="google.com/maps"], a[href*="goo.gl/maps"], a[href*="maps.google"]`).Each(func(_ int, a *goquery.Selection) {
		if result.GoogleMapsURL != "" {
			return
		}
		result.GoogleMapsURL, _ = a.Attr("href")
	})

	// The street address is the visible text of the maps link.
	doc.Find(`a[href*="goo.gl/maps"], a[href*="google.com/maps"]`).Each(func(_ int, a *goquery.Selection) {
		if result.Address != "" {
			return
		}
		t := strings.TrimSpace(a.Text())
		if n := utf8.RuneCountInString(t); n > 5 && n < 200 {
			result.Address = t
		}
	})

	if result.Address != "" {
		result.City, result.Neighborhood, result.State, result.Zip = inferLocation(result.Address)
	}

	doc.Find(`a[href*="facebook.com"]`).Each(func(_ int, a *goquery.Selection) {
		if result.FacebookURL == "" {
			result.FacebookURL, _ = a.Attr("href")
		}
	})
	doc.Find(`a[href*="instagram.com"]`).Each(func(_ int, a *goquery.Selection) {
		if result.InstagramURL == "" {
			result.InstagramURL, _ = a.Attr("href")
		}
	})
	doc.Find(`a[href*="yelp.com"]`).Each(func(_ int, a *goquery.Selection) {
		if result.YelpURL == "" {
			result.YelpURL, _ = a.Attr("href")
		}
	})

	extractDetailImages(baseURL, doc, result)

	doc.Find("p, .about, .description, .intro").Each(func(_ int, el *goquery.Selection) {
		if result.Description != "" {
			return
		}
		t := strings.TrimSpace(el.Text())
		n := utf8.RuneCountInString(t)
		if n <= 20 || n >= 2000 || domain.IsGenericName(t) {
			return
		}
		// Nav blocks on the page carry the login/promote chrome.
		if strings.Contains(t, "Log in") || strings.Contains(t, "Promote") {
			return
		}
		result.Description = truncateRunes(t, 1000)
	})

	doc.Find(`a[href*="order"], a[href*="menu"], a[href*="toasttab"]`).Each(func(_ int, a *goquery.Selection) {
		if result.OrderURL != "" {
			return
		}
		href, _ := a.Attr("href")
		if href != "" && !strings.Contains(href, ownSite) {
			result.OrderURL = href
		}
	})

	return result
}

// extractDetailName resolves the business name: the recognized title heading
// first, then any non-generic h2, then any non-generic h1.
func extractDetailName(doc *goquery.Document) string {
	if titleEl := doc.Find(`h2.title, .title h2, h2[class*="title"]`); titleEl.Length() > 0 {
		if t := strings.TrimSpace(titleEl.First().Text()); isAcceptableDetailName(t) {
			return t
		}
	}
	name := ""
	doc.Find("h2").Each(func(_ int, el *goquery.Selection) {
		if name != "" {
			return
		}
		if t := strings.TrimSpace(el.Text()); isAcceptableDetailName(t) {
			name = t
		}
	})
	if name != "" {
		return name
	}
	doc.Find("h1").Each(func(_ int, el *goquery.Selection) {
		if name != "" {
			return
		}
		if t := strings.TrimSpace(el.Text()); isAcceptableDetailName(t) {
			name = t
		}
	})
	return name
}

func isAcceptableDetailName(t string) bool {
	n := utf8.RuneCountInString(t)
	return n > 1 && n < 200 && !domain.IsGenericName(t)
}

// extractDetailImages fills logo, gallery, banner and QR code. The gallery is
// built in two passes: the poster directories first, then any remaining
// content image carrying an upload/photo/image marker. Both passes dedupe by
// resolved URL, insertion order preserved.
func extractDetailImages(baseURL string, doc *goquery.Document, result *domain.DetailFragment) {
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := imageSource(img)
		if strings.Contains(src, "logo/") && !isGenericImage(src) && result.LogoURL == "" {
			result.LogoURL = resolveURL(baseURL, src)
		}
	})

	var gallery []string
	inGallery := make(map[string]bool)
	appendToGallery := func(src string) {
		resolved := resolveURL(baseURL, src)
		if !inGallery[resolved] {
			inGallery[resolved] = true
			gallery = append(gallery, resolved)
		}
	}

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := imageSource(img)
		if src == "" || isGenericImage(src) {
			return
		}
		if strings.Contains(src, "poster/") || strings.Contains(src, "adposter/") {
			appendToGallery(src)
		}
	})

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := imageSource(img)
		if src == "" || isGenericImage(src) ||
			strings.Contains(src, "logo") ||
			strings.Contains(src, "qrcode") ||
			strings.Contains(src, "bk") ||
			strings.Contains(src, "icon") {
			return
		}
		if strings.Contains(src, "upload") || strings.Contains(src, "photo") || strings.Contains(src, "image") {
			appendToGallery(src)
		}
	})

	result.GalleryURLs = gallery

	doc.Find(`img[src*="bk"], img[data-original*="bk"], img[data-src*="bk"], img[data-lazy*="bk"]`).Each(func(_ int, img *goquery.Selection) {
		if result.BannerURL != "" {
			return
		}
		src := imageSource(img)
		if src != "" && !isGenericImage(src) {
			result.BannerURL = resolveURL(baseURL, src)
		}
	})

	doc.Find(`img[src*="qrcode"], img[src*="qr"], img[data-original*="qrcode"], img[data-original*="qr"], img[data-src*="qrcode"], img[data-src*="qr"], img[data-lazy*="qrcode"], img[data-lazy*="qr"]`).Each(func(_ int, img *goquery.Selection) {
		if result.QRCodeURL != "" {
			return
		}
		if src := imageSource(img); src != "" {
			result.QRCodeURL = resolveURL(baseURL, src)
		}
	})
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
