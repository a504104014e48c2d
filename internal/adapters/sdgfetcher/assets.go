package sdgfetcher

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parentRefPattern matches one "segment/../" run inside a malformed relative
// path (the site emits paths like "images/../images/poster/x.jpg").
var parentRefPattern = regexp.MustCompile(`[^/]+/\.\./`)

// resolveURL turns a possibly-relative asset path into an absolute URL under
// the site origin. Already-absolute URLs pass through unchanged, so the
// function is idempotent on clean input.
func resolveURL(baseURL, src string) string {
	if src == "" {
		return ""
	}
	if strings.HasPrefix(src, "http") {
		return src
	}
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	cleaned := strings.TrimPrefix(src, "/")
	for strings.Contains(cleaned, "../") {
		next := parentRefPattern.ReplaceAllString(cleaned, "")
		if next == cleaned {
			// A leading "../" has no segment to collapse against; stop
			// rather than loop forever.
			break
		}
		cleaned = next
	}
	return baseURL + "/" + cleaned
}

// imageSource extracts the real image URL from an <img> element. The site
// lazy-loads most images, so the lazy-load attributes take precedence over
// src (which usually holds a placeholder).
func imageSource(sel *goquery.Selection) string {
	for _, attr := range []string{"data-original", "data-src", "data-lazy", "src"} {
		if v, ok := sel.Attr(attr); ok && v != "" {
			return v
		}
	}
	return ""
}

// genericImageMarkers are substrings of site-wide chrome assets: the
// placeholder poster on every card, the footer logos, the tracking pixel
// domain, the favicon and the page background. Anything matching here must
// never land in a logo or gallery field.
var genericImageMarkers = []string{
	"poster0.jpg",
	"logo3.png",
	"logo4.png",
	"histats.com",
	"favicon",
	"bk11.jpg",
}

// isGenericImage reports whether src points at site chrome rather than
// business-specific imagery. An empty src counts as generic.
func isGenericImage(src string) bool {
	if src == "" {
		return true
	}
	for _, marker := range genericImageMarkers {
		if strings.Contains(src, marker) {
			return true
		}
	}
	return false
}

// siteMarker derives the substring used to recognize links back to the source
// site itself, e.g. "shopdineguide.com" from the base URL.
func siteMarker(baseURL string) string {
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		return strings.TrimPrefix(u.Host, "www.")
	}
	return baseURL
}
