package sdgfetcher

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"sdg-content-service/internal/core/domain"
)

var (
	listingHrefPattern = regexp.MustCompile(`(?:ad)?showpon\.php\?id=(\d+)`)
	allDigitsPattern   = regexp.MustCompile(`^\d+$`)
	digitRunPattern    = regexp.MustCompile(`\d+`)
)

// cardSelectors are the known card-wrapper shapes on listing pages, in
// priority order. The walk-up stops at the first ancestor that matches.
var cardSelectors = []string{".food1", ".imgholder", ".grid"}

// mapListingPage extracts all business cards from one index page.
// Output order is document order of first occurrence; duplicates of the same
// (id, isAd) pair within the page are dropped, first one wins.
func mapListingPage(baseURL string, doc *goquery.Document, section string) []domain.ListingItem {
	var items []domain.ListingItem
	seen := make(map[domain.ListingKey]bool)

	doc.Find(`a[href*="showpon.php"], a[href*="adshowpon.php"]`).Each(func(_ int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		m := listingHrefPattern.FindStringSubmatch(href)
		if m == nil {
			return
		}
		id, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return
		}
		isAd := strings.Contains(href, "adshowpon")

		key := domain.ListingKey{ID: id, IsAd: isAd}
		if seen[key] {
			return
		}
		seen[key] = true

		card := closestCard(anchor)

		name := extractListingName(anchor, card)
		if name == "" || domain.IsGenericName(name) {
			name = domain.PlaceholderName(id)
		}

		// The card stacks a generic background image under the
		// business-specific logo; the last non-generic image is the logo.
		logoURL := ""
		card.Find("img").Each(func(_ int, img *goquery.Selection) {
			src := imageSource(img)
			if src != "" && !isGenericImage(src) {
				logoURL = resolveURL(baseURL, src)
			}
		})

		likeCount := 0
		if countEl := card.Find(".itemleft-s"); countEl.Length() > 0 {
			if run := digitRunPattern.FindString(countEl.Text()); run != "" {
				likeCount, _ = strconv.Atoi(run)
			}
		}

		items = append(items, domain.ListingItem{
			ID:        id,
			Name:      name,
			LogoURL:   logoURL,
			LikeCount: likeCount,
			IsAd:      isAd,
			Section:   section,
		})
	})

	return items
}

// closestCard walks up from the anchor to the nearest known card container,
// falling back to the immediate parent when none matches.
func closestCard(anchor *goquery.Selection) *goquery.Selection {
	for _, selector := range cardSelectors {
		if card := anchor.Closest(selector); card.Length() > 0 {
			return card
		}
	}
	return anchor.Parent()
}

// extractListingName tries the known name locations in priority order:
// the .itemleft-ss label, then an emphasis-styled div inside the anchor (the
// deals cards carry their title there), then any short non-numeric text
// inside the anchor, then the same search widened to the whole card.
func extractListingName(anchor, card *goquery.Selection) string {
	if nameEl := card.Find(".itemleft-ss"); nameEl.Length() > 0 {
		if name := strings.TrimSpace(nameEl.First().Text()); name != "" {
			return name
		}
	}

	name := ""
	anchor.Find("div").Each(func(_ int, child *goquery.Selection) {
		if name != "" {
			return
		}
		t := strings.TrimSpace(child.Text())
		style, _ := child.Attr("style")
		style = strings.ToLower(style)
		if isCandidateName(t, 120) &&
			(strings.Contains(style, "font-weight") || strings.Contains(style, "font-size")) {
			name = t
		}
	})
	if name != "" {
		return name
	}

	anchor.Find("div, span").Each(func(_ int, child *goquery.Selection) {
		if name != "" {
			return
		}
		if t := strings.TrimSpace(child.Text()); isCandidateName(t, 100) {
			name = t
		}
	})
	if name != "" {
		return name
	}

	card.Find("div, span").Each(func(_ int, child *goquery.Selection) {
		if name != "" {
			return
		}
		if t := strings.TrimSpace(child.Text()); isCandidateName(t, 100) {
			name = t
		}
	})
	return name
}

func isCandidateName(t string, maxLen int) bool {
	n := utf8.RuneCountInString(t)
	return n > 1 && n < maxLen && !allDigitsPattern.MatchString(t)
}
