// Package query extracts coarse listing filters from free-text search
// strings. Parsing is deterministic and never fails: unrecognized input
// simply leaves the corresponding filter unset.
package query

import (
	"regexp"
	"strconv"
	"strings"

	domain "github.com/carexpo/car-expo/pkg/types"
)

// Type patterns, checked in order; the first match wins.
var typePatterns = []struct {
	re *regexp.Regexp
	t  domain.VehicleType
}{
	{regexp.MustCompile(`\bev\b|electric`), domain.TypeEV},
	{regexp.MustCompile(`suv`), domain.TypeSUV},
	{regexp.MustCompile(`sedan`), domain.TypeSedan},
	{regexp.MustCompile(`truck`), domain.TypeTruck},
}

var (
	// "under $25k", "below 20000", "max $30k", "< 15k". A bare "k" right
	// after the number means thousands even when it starts a longer word.
	underPattern = regexp.MustCompile(`(?:under|below|<=|<|max)\s*\$?\s*(\d+)\s*(k)?`)
	// bare "$20k" or "$20000" without an explicit bound word
	dollarPattern = regexp.MustCompile(`\$\s*(\d+)\s*(k)?`)
)

// Parse infers a vehicle type and a maximum price from free text. Matching
// is case-insensitive. The bound-word price pattern takes precedence over a
// bare dollar amount; when neither matches, MaxPrice stays nil so that no
// listing is excluded.
func Parse(text string) domain.ParsedQuery {
	lower := strings.ToLower(text)

	var q domain.ParsedQuery

	for _, p := range typePatterns {
		if p.re.MatchString(lower) {
			t := p.t
			q.Type = &t
			break
		}
	}

	m := underPattern.FindStringSubmatch(lower)
	if m == nil {
		m = dollarPattern.FindStringSubmatch(lower)
	}
	if m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			if m[2] != "" {
				n *= 1000
			}
			q.MaxPrice = &n
		}
	}

	return q
}
