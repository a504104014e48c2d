package sdgfetcher

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"sdg-content-service/internal/core/domain"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestMapListingPageBasicCard(t *testing.T) {
	html := `<html><body>
	<div class="food1">
		<a href="showpon.php?id=101">
			<img src="images/poster0.jpg">
			<img data-original="logo/101.png">
		</a>
		<div class="itemleft-ss">Golden Gate Bakery</div>
		<div class="itemleft-s">likes: 42</div>
	</div>
	</body></html>`

	items := mapListingPage(testBaseURL, parseDoc(t, html), "shop")
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	got := items[0]
	if got.ID != 101 {
		t.Errorf("ID = %d, want 101", got.ID)
	}
	if got.IsAd {
		t.Error("IsAd = true, want false")
	}
	if got.Name != "Golden Gate Bakery" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Section != "shop" {
		t.Errorf("Section = %q, want shop", got.Section)
	}
	if want := "https://shopdineguide.com/logo/101.png"; got.LogoURL != want {
		t.Errorf("LogoURL = %q, want %q", got.LogoURL, want)
	}
	if got.LikeCount != 42 {
		t.Errorf("LikeCount = %d, want 42", got.LikeCount)
	}
}

func TestMapListingPageAdVariant(t *testing.T) {
	html := `<html><body>
	<div class="grid">
		<a href="adshowpon.php?id=7"><span>Promoted Diner</span></a>
	</div>
	</body></html>`

	items := mapListingPage(testBaseURL, parseDoc(t, html), "dine")
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if !items[0].IsAd {
		t.Error("IsAd = false, want true for adshowpon link")
	}
	if items[0].ID != 7 {
		t.Errorf("ID = %d, want 7", items[0].ID)
	}
	if items[0].Name != "Promoted Diner" {
		t.Errorf("Name = %q", items[0].Name)
	}
}

func TestMapListingPageDeduplicatesWithinPage(t *testing.T) {
	// The same business is linked twice (image anchor + title anchor); the
	// ad variant of the same id is a distinct entry.
	html := `<html><body>
	<div class="imgholder">
		<a href="showpon.php?id=5"><img src="logo/5.png"></a>
		<a href="showpon.php?id=5"><span>Dup Cafe</span></a>
		<a href="adshowpon.php?id=5"><span>Dup Cafe Ad</span></a>
	</div>
	</body></html>`

	items := mapListingPage(testBaseURL, parseDoc(t, html), "dine")
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (organic + ad)", len(items))
	}
	if items[0].IsAd || !items[1].IsAd {
		t.Errorf("order = [%v %v], want organic first then ad", items[0].IsAd, items[1].IsAd)
	}
}

func TestMapListingPageLastNonGenericImageWins(t *testing.T) {
	// Cards stack the shared background first, the real logo last.
	html := `<html><body>
	<div class="food1">
		<a href="showpon.php?id=9">
			<img src="images/bk11.jpg">
			<img src="images/poster0.jpg">
			<img data-src="logo/first.png">
			<img data-src="logo/second.png">
		</a>
		<div class="itemleft-ss">Two Logos</div>
	</div>
	</body></html>`

	items := mapListingPage(testBaseURL, parseDoc(t, html), "shop")
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if want := "https://shopdineguide.com/logo/second.png"; items[0].LogoURL != want {
		t.Errorf("LogoURL = %q, want %q", items[0].LogoURL, want)
	}
}

func TestMapListingPageStyledDivNameFallback(t *testing.T) {
	// No .itemleft-ss label; the deals cards carry the title in an
	// emphasis-styled div inside the anchor.
	html := `<html><body>
	<div class="grid">
		<a href="showpon.php?id=12">
			<div style="font-weight:bold">Deal House</div>
			<div>12345</div>
		</a>
	</div>
	</body></html>`

	items := mapListingPage(testBaseURL, parseDoc(t, html), "dine")
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Name != "Deal House" {
		t.Errorf("Name = %q, want Deal House", items[0].Name)
	}
}

func TestMapListingPageGenericNameGetsPlaceholder(t *testing.T) {
	html := `<html><body>
	<div class="food1">
		<a href="showpon.php?id=55"><span>Hot Deals</span></a>
	</div>
	</body></html>`

	items := mapListingPage(testBaseURL, parseDoc(t, html), "shop")
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if want := domain.PlaceholderName(55); items[0].Name != want {
		t.Errorf("Name = %q, want %q", items[0].Name, want)
	}
}

func TestMapListingPageIgnoresUnrelatedLinks(t *testing.T) {
	html := `<html><body>
	<a href="index.php?s=shop">Shop</a>
	<a href="about.php">About</a>
	</body></html>`

	if items := mapListingPage(testBaseURL, parseDoc(t, html), "shop"); len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}
