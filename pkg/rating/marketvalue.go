package rating

import (
	"math"
	"time"

	domain "github.com/carexpo/car-expo/pkg/types"
)

// maxDepreciation caps total depreciation at 80% of the base value.
const maxDepreciation = 0.8

// EstimateMarketValue returns a rough depreciated fair price for a listing.
// A base price looked up by make depreciates by a fixed yearly schedule:
// 20% the first year, 15% each of the next two, 10% each of the following
// two, and 8% per year after that. Rates accumulate additively, not
// compounding, and the total is capped at 80%.
//
// The estimate feeds only the value factor of the rating; it is not a true
// valuation and is never reported as one.
func EstimateMarketValue(l *domain.Listing, at time.Time) float64 {
	base, ok := baseValues[l.Make]
	if !ok {
		base = defaultBaseValue
	}

	age := l.Age(at)

	var depreciation float64
	for i := 0; i < age; i++ {
		switch {
		case i == 0:
			depreciation += 0.20
		case i < 3:
			depreciation += 0.15
		case i < 5:
			depreciation += 0.10
		default:
			depreciation += 0.08
		}
	}

	return base * (1 - math.Min(maxDepreciation, depreciation))
}
