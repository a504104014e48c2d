package domain

import "strings"

// genericNames is the fixed list of navigation/page-chrome labels the source
// site renders near business cards. A "name" matching one of these exactly
// (after trim + lowercase) is chrome text, not a business name. The list is a
// contract with the source markup; extend it only against real pages.
var genericNames = map[string]struct{}{
	"about us":     {},
	"about":        {},
	"hot deals":    {},
	"deals":        {},
	"news":         {},
	"order":        {},
	"home":         {},
	"contact":      {},
	"contact us":   {},
	"log in":       {},
	"login":        {},
	"promote":      {},
	"free promote": {},
	"shop":         {},
	"dine":         {},
	"guide":        {},
	"brands":       {},
	"coupons":      {},
	"menu":         {},
	"hours":        {},
	"location":     {},
	"reviews":      {},
	"photos":       {},
	"map":          {},
	"all":          {},
	"hot":          {},
	"free":         {},
	"search":       {},
}

// IsGenericName reports whether the given text is site chrome rather than a
// business name. Matching is exact after trimming and lowercasing.
func IsGenericName(name string) bool {
	_, ok := genericNames[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
