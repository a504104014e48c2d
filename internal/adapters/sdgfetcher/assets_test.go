package sdgfetcher

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const testBaseURL = "https://shopdineguide.com"

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"absolute http", "http://cdn.example.com/a.jpg", "http://cdn.example.com/a.jpg"},
		{"absolute https", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"protocol relative", "//cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"relative", "images/poster/x.jpg", "https://shopdineguide.com/images/poster/x.jpg"},
		{"rooted", "/images/poster/x.jpg", "https://shopdineguide.com/images/poster/x.jpg"},
		{"parent ref collapsed", "images/../images/poster/x.jpg", "https://shopdineguide.com/images/poster/x.jpg"},
		{"nested parent refs", "a/b/../../images/x.jpg", "https://shopdineguide.com/images/x.jpg"},
		{"leading parent ref stops", "../images/x.jpg", "https://shopdineguide.com/../images/x.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveURL(testBaseURL, tt.src); got != tt.want {
				t.Errorf("resolveURL(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestResolveURLIdempotent(t *testing.T) {
	once := resolveURL(testBaseURL, "images/poster/x.jpg")
	twice := resolveURL(testBaseURL, once)
	if once != twice {
		t.Errorf("resolveURL not idempotent: %q then %q", once, twice)
	}
}

func TestImageSource(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"data-original wins over src",
			`<img data-original="real.jpg" src="placeholder.gif">`,
			"real.jpg",
		},
		{
			"data-src wins over data-lazy and src",
			`<img data-src="real.jpg" data-lazy="lazy.jpg" src="placeholder.gif">`,
			"real.jpg",
		},
		{
			"data-lazy wins over src",
			`<img data-lazy="real.jpg" src="placeholder.gif">`,
			"real.jpg",
		},
		{
			"src fallback",
			`<img src="real.jpg">`,
			"real.jpg",
		},
		{
			"empty lazy attr skipped",
			`<img data-original="" src="real.jpg">`,
			"real.jpg",
		},
		{
			"no attributes",
			`<img>`,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := imageSource(doc.Find("img")); got != tt.want {
				t.Errorf("imageSource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsGenericImage(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"", true},
		{"images/poster0.jpg", true},
		{"images/logo3.png", true},
		{"images/logo4.png", true},
		{"https://s10.histats.com/stats/0.gif", true},
		{"favicon.ico", true},
		{"images/bk11.jpg", true},
		{"images/poster/1234.jpg", false},
		{"logo/1234.png", false},
		{"upload/photo_5.jpg", false},
	}
	for _, tt := range tests {
		if got := isGenericImage(tt.src); got != tt.want {
			t.Errorf("isGenericImage(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestSiteMarker(t *testing.T) {
	tests := []struct {
		baseURL string
		want    string
	}{
		{"https://shopdineguide.com", "shopdineguide.com"},
		{"https://www.shopdineguide.com", "shopdineguide.com"},
		{"http://localhost:8099", "localhost:8099"},
	}
	for _, tt := range tests {
		if got := siteMarker(tt.baseURL); got != tt.want {
			t.Errorf("siteMarker(%q) = %q, want %q", tt.baseURL, got, tt.want)
		}
	}
}
