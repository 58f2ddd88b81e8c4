// Package recommend combines explicit UI filters with parsed query filters
// to select, score, and rank car listings.
package recommend

import (
	"sort"
	"strings"
	"time"

	"github.com/carexpo/car-expo/pkg/rating"
	domain "github.com/carexpo/car-expo/pkg/types"
)

// FilterAll is the UI filter value meaning "no type restriction".
const FilterAll = "all"

// SortOverall ranks by the composite score; any sub-score name
// ("value", "reliability", ...) ranks by that factor instead.
const SortOverall = "overall"

// Options controls listing selection and ordering.
type Options struct {
	// Filter is the explicit UI type filter; "all" or empty disables it.
	Filter string
	// Query holds filters parsed from the search text.
	Query domain.ParsedQuery
	// SortBy is "overall" (default) or a sub-score key.
	SortBy string
	// Weights overrides the rating weights; zero value means defaults.
	Weights *rating.Weights
}

// Scored pairs a listing with its computed rating.
type Scored struct {
	Listing domain.Listing `json:"listing"`
	Rating  domain.Rating  `json:"rating"`
}

// Select filters listings by the UI type filter, then by the parsed query's
// type and max price, rates every survivor, and stable-sorts descending by
// the requested score. An empty result is a normal outcome, not an error.
// The input slice is never mutated.
func Select(listings []domain.Listing, opts Options, at time.Time) []Scored {
	weights := rating.DefaultWeights()
	if opts.Weights != nil {
		weights = *opts.Weights
	}

	kept := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if !matches(&l, opts) {
			continue
		}
		kept = append(kept, l)
	}

	scored := make([]Scored, 0, len(kept))
	for i := range kept {
		scored = append(scored, Scored{
			Listing: kept[i],
			Rating:  rating.CalculateWithWeights(&kept[i], at, weights),
		})
	}

	sortKey := opts.SortBy
	if sortKey == "" {
		sortKey = SortOverall
	}

	// Stable sort: listings with equal scores keep their input order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scoreFor(&scored[i], sortKey) > scoreFor(&scored[j], sortKey)
	})

	return scored
}

// Listings strips the ratings off a scored slice, preserving rank order.
func Listings(scored []Scored) []domain.Listing {
	out := make([]domain.Listing, len(scored))
	for i := range scored {
		out[i] = scored[i].Listing
	}
	return out
}

func matches(l *domain.Listing, opts Options) bool {
	if opts.Filter != "" && opts.Filter != FilterAll {
		if l.Type != domain.NormalizeVehicleType(opts.Filter) {
			return false
		}
	}

	if opts.Query.Type != nil {
		if !strings.EqualFold(string(l.Type), string(*opts.Query.Type)) {
			return false
		}
	}

	if opts.Query.MaxPrice != nil && l.Price > *opts.Query.MaxPrice {
		return false
	}

	return true
}

func scoreFor(s *Scored, key string) float64 {
	if key == SortOverall {
		return float64(s.Rating.OverallScore)
	}
	if sub, ok := s.Rating.Breakdown.ByKey(key); ok {
		return sub
	}
	return float64(s.Rating.OverallScore)
}
