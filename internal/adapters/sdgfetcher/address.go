package sdgfetcher

import (
	"regexp"
	"strings"
)

// sfNeighborhoods are the San Francisco neighborhoods the source site lists
// businesses in. Matched case-insensitively as substrings; first match wins.
var sfNeighborhoods = []string{
	"Chinatown",
	"Fishermans Wharf",
	"Hayes Valley",
	"Mission",
	"Richmond",
	"Silver",
	"Sunset",
}

// knownCities is checked in order. "South San Francisco" must come before
// "San Francisco": the shorter name is a substring of the longer one and
// would otherwise swallow it.
var knownCities = []string{
	"South San Francisco",
	"San Francisco",
	"San Mateo",
	"Daly City",
	"Millbrae",
	"Napa",
}

// zipPattern matches a Bay Area ZIP: five digits starting with 9.
var zipPattern = regexp.MustCompile(`\b(9\d{4})\b`)

// inferLocation derives city, neighborhood, state and zip from a street
// address string. Everything is best-effort; state is always "CA" since the
// site only covers California businesses.
func inferLocation(address string) (city, neighborhood, state, zip string) {
	lowerAddress := strings.ToLower(address)
	for _, n := range sfNeighborhoods {
		if strings.Contains(lowerAddress, strings.ToLower(n)) {
			neighborhood = n
			break
		}
	}

	for _, c := range knownCities {
		if strings.Contains(address, c) {
			city = c
			break
		}
	}

	state = "CA"

	if m := zipPattern.FindStringSubmatch(address); m != nil {
		zip = m[1]
	}
	return city, neighborhood, state, zip
}
