package constants

import "time"

// Source site parameters. Listing pages live at index.php?s=<key>; detail
// pages at showpon.php?id=<id> (organic) and adshowpon.php?id=<id> (ad).
const (
	DefaultBaseURL = "https://shopdineguide.com"

	// UserAgent identifies the sync job honestly to the source site.
	UserAgent = "ShopDineGuide-App/1.0 (Content Sync)"

	// DefaultScrapeDelay is the minimum gap between two requests to the
	// source site. Politeness control, not tunable for speed.
	DefaultScrapeDelay = 300 * time.Millisecond

	DefaultOutputPath = "assets/data/businesses.json"
)

// Sections are the three content sections of the site. Each listing keeps the
// section tag of the page it was first seen on.
var Sections = []string{"shop", "dine", "guide"}

// FilterPages are additional index views that surface businesses already in
// the sections plus a few extras. Items found here are tagged with
// FilterPagesSection and only kept when not already accumulated.
var FilterPages = []string{"hot", "free", "deals", "coupons"}

// FilterPagesSection is the section recorded for businesses discovered on a
// filter page. The filter views are dining-centric on the source site.
const FilterPagesSection = "dine"
