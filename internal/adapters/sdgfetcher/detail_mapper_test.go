package sdgfetcher

import (
	"strings"
	"testing"
)

const detailFixture = `<html><body>
<div class="nav">
	<p>Log in or Promote your business with us today and reach more customers.</p>
</div>
<h2 class="title">Dragon Palace Restaurant</h2>
<a href="tel:415\-555\-0199">Call us</a>
<a href="https://www.dragonpalace-sf.example.com">Visit website</a>
<a href="https://goo.gl/maps/abc123">838 Grant Ave, Chinatown, San Francisco, CA 94108</a>
<a href="https://www.facebook.com/dragonpalace">Facebook</a>
<a href="https://www.instagram.com/dragonpalace">Instagram</a>
<a href="https://www.yelp.com/biz/dragon-palace">Yelp</a>
<img src="images/bk11.jpg">
<img src="images/poster0.jpg">
<img data-original="logo/33.png">
<img data-original="images/poster/33a.jpg">
<img data-original="images/poster/33b.jpg">
<img data-original="/images/poster/33a.jpg">
<img data-src="upload/food_1.jpg">
<img src="images/bk5.jpg">
<img src="qrcode/33.png">
<p>Short text.</p>
<p>Family-run Cantonese restaurant serving dim sum and seafood in the heart of Chinatown since 1987.</p>
<a href="https://order.toasttab.com/online/dragon-palace">Order online</a>
</body></html>`

func TestMapDetailPageFullFixture(t *testing.T) {
	got := mapDetailPage(testBaseURL, parseDoc(t, detailFixture))

	if got.Name != "Dragon Palace Restaurant" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Phone != "415-555-0199" {
		t.Errorf("Phone = %q, want backslashes stripped", got.Phone)
	}
	if want := "https://www.dragonpalace-sf.example.com"; got.Website != want {
		t.Errorf("Website = %q, want %q", got.Website, want)
	}
	if want := "https://goo.gl/maps/abc123"; got.GoogleMapsURL != want {
		t.Errorf("GoogleMapsURL = %q, want %q", got.GoogleMapsURL, want)
	}
	if want := "838 Grant Ave, Chinatown, San Francisco, CA 94108"; got.Address != want {
		t.Errorf("Address = %q, want %q", got.Address, want)
	}
	if got.City != "San Francisco" || got.Neighborhood != "Chinatown" || got.State != "CA" || got.Zip != "94108" {
		t.Errorf("location = (%q, %q, %q, %q)", got.City, got.Neighborhood, got.State, got.Zip)
	}
	if want := "https://www.facebook.com/dragonpalace"; got.FacebookURL != want {
		t.Errorf("FacebookURL = %q", got.FacebookURL)
	}
	if want := "https://www.instagram.com/dragonpalace"; got.InstagramURL != want {
		t.Errorf("InstagramURL = %q", got.InstagramURL)
	}
	if want := "https://www.yelp.com/biz/dragon-palace"; got.YelpURL != want {
		t.Errorf("YelpURL = %q", got.YelpURL)
	}
	if want := "https://shopdineguide.com/logo/33.png"; got.LogoURL != want {
		t.Errorf("LogoURL = %q, want %q", got.LogoURL, want)
	}

	// 33a.jpg appears twice with different spellings; after URL resolution
	// it must show up once. The placeholder poster0 never enters the gallery.
	wantGallery := []string{
		"https://shopdineguide.com/images/poster/33a.jpg",
		"https://shopdineguide.com/images/poster/33b.jpg",
		"https://shopdineguide.com/upload/food_1.jpg",
	}
	if len(got.GalleryURLs) != len(wantGallery) {
		t.Fatalf("gallery = %v, want %v", got.GalleryURLs, wantGallery)
	}
	for i := range wantGallery {
		if got.GalleryURLs[i] != wantGallery[i] {
			t.Errorf("gallery[%d] = %q, want %q", i, got.GalleryURLs[i], wantGallery[i])
		}
	}

	if want := "https://shopdineguide.com/images/bk5.jpg"; got.BannerURL != want {
		t.Errorf("BannerURL = %q, want %q (bk11 is site chrome)", got.BannerURL, want)
	}
	if want := "https://shopdineguide.com/qrcode/33.png"; got.QRCodeURL != want {
		t.Errorf("QRCodeURL = %q, want %q", got.QRCodeURL, want)
	}

	if !strings.HasPrefix(got.Description, "Family-run Cantonese") {
		t.Errorf("Description = %q, want the long paragraph (nav and short texts skipped)", got.Description)
	}
	if want := "https://order.toasttab.com/online/dragon-palace"; got.OrderURL != want {
		t.Errorf("OrderURL = %q, want %q", got.OrderURL, want)
	}
}

func TestMapDetailPageNameFallsBackToHeadings(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"plain h2 when no title heading",
			`<html><body><h2>Lucky Noodle House</h2></body></html>`,
			"Lucky Noodle House",
		},
		{
			"h1 when h2 is generic",
			`<html><body><h2>About Us</h2><h1>Lucky Noodle House</h1></body></html>`,
			"Lucky Noodle House",
		},
		{
			"generic headings only",
			`<html><body><h2>Menu</h2><h1>Contact</h1></body></html>`,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapDetailPage(testBaseURL, parseDoc(t, tt.html))
			if got.Name != tt.want {
				t.Errorf("Name = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestMapDetailPageWebsiteExclusions(t *testing.T) {
	// Social, maps, tracking and self links never count as the website.
	html := `<html><body>
	<a href="https://shopdineguide.com/index.php?s=dine">Back</a>
	<a href="https://www.google.com/maps/place/x">Map</a>
	<a href="https://www.facebook.com/x">FB</a>
	<a href="https://www.histats.com/x">Stats</a>
	<a href="www.realsite.example.com">Site</a>
	</body></html>`

	got := mapDetailPage(testBaseURL, parseDoc(t, html))
	if want := "https://www.realsite.example.com"; got.Website != want {
		t.Errorf("Website = %q, want %q (www. prefix upgraded)", got.Website, want)
	}
}

func TestMapDetailPageEmptyDocument(t *testing.T) {
	got := mapDetailPage(testBaseURL, parseDoc(t, `<html><body></body></html>`))
	if got.Name != "" || got.Phone != "" || got.Website != "" || got.Address != "" {
		t.Errorf("empty page produced fields: %+v", got)
	}
	if len(got.GalleryURLs) != 0 {
		t.Errorf("gallery = %v, want empty", got.GalleryURLs)
	}
}
