package sdgfetcher

import "testing"

func TestInferLocation(t *testing.T) {
	tests := []struct {
		name             string
		address          string
		wantCity         string
		wantNeighborhood string
		wantZip          string
	}{
		{
			name:     "plain san francisco",
			address:  "123 Market St, San Francisco, CA 94103",
			wantCity: "San Francisco",
			wantZip:  "94103",
		},
		{
			// "San Francisco" is a substring of "South San Francisco"; the
			// longer city must win.
			name:     "south san francisco",
			address:  "456 Grand Ave, South San Francisco, CA 94080",
			wantCity: "South San Francisco",
			wantZip:  "94080",
		},
		{
			name:             "neighborhood matched case-insensitively",
			address:          "789 Grant Ave, chinatown, San Francisco, CA 94108",
			wantCity:         "San Francisco",
			wantNeighborhood: "Chinatown",
			wantZip:          "94108",
		},
		{
			name:             "sunset district",
			address:          "2001 Irving St, Sunset, San Francisco, CA",
			wantCity:         "San Francisco",
			wantNeighborhood: "Sunset",
		},
		{
			name:     "daly city",
			address:  "100 Serramonte Center, Daly City, CA 94015",
			wantCity: "Daly City",
			wantZip:  "94015",
		},
		{
			name:     "napa",
			address:  "500 Main St, Napa, CA 94559",
			wantCity: "Napa",
			wantZip:  "94559",
		},
		{
			name:    "unknown city",
			address: "1 Infinite Loop, Cupertino, CA 95014",
			wantZip: "95014",
		},
		{
			// Only 9xxxx five-digit runs count as a ZIP.
			name:     "street number not mistaken for zip",
			address:  "94103 Market St, San Francisco",
			wantCity: "San Francisco",
			wantZip:  "94103",
		},
		{
			name:    "no zip outside 9xxxx",
			address: "10 Main St, Anytown, NY 10001",
		},
		{
			name:    "empty address",
			address: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, neighborhood, state, zip := inferLocation(tt.address)
			if city != tt.wantCity {
				t.Errorf("city = %q, want %q", city, tt.wantCity)
			}
			if neighborhood != tt.wantNeighborhood {
				t.Errorf("neighborhood = %q, want %q", neighborhood, tt.wantNeighborhood)
			}
			if state != "CA" {
				t.Errorf("state = %q, want CA", state)
			}
			if zip != tt.wantZip {
				t.Errorf("zip = %q, want %q", zip, tt.wantZip)
			}
		})
	}
}
