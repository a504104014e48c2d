package domain

import "testing"

func TestIsGenericName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"About Us", true},
		{"  Contact Us  ", true},
		{"HOT DEALS", true},
		{"login", true},
		{"Free Promote", true},
		{"shop", true},
		{"Golden Gate Bakery", false},
		{"Hot Pot Palace", false},
		{"", false},
		{"Menus", false},
	}
	for _, tt := range tests {
		if got := IsGenericName(tt.name); got != tt.want {
			t.Errorf("IsGenericName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPlaceholderName(t *testing.T) {
	if got := PlaceholderName(42); got != "Business 42" {
		t.Errorf("PlaceholderName(42) = %q", got)
	}
}

func TestListingKeySeparatesAdFromOrganic(t *testing.T) {
	organic := ListingItem{ID: 5, IsAd: false}
	ad := ListingItem{ID: 5, IsAd: true}
	if organic.Key() == ad.Key() {
		t.Error("organic and ad listings with the same id must have distinct keys")
	}
}
