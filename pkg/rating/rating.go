// Package rating computes multi-factor desirability scores for car listings.
// All functions are pure: the same listing and reference time always produce
// the same rating, with no I/O and no hidden state.
package rating

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	domain "github.com/carexpo/car-expo/pkg/types"
)

// Weights defines the relative importance of each rating factor.
type Weights struct {
	Value       float64
	Reliability float64
	Features    float64
	Condition   float64
	Performance float64
	Efficiency  float64
	Style       float64
}

// DefaultWeights returns the default factor weights. They sum to 1.0; the
// grade bands are calibrated against this exact split.
func DefaultWeights() Weights {
	return Weights{
		Value:       0.25,
		Reliability: 0.20,
		Features:    0.15,
		Condition:   0.15,
		Performance: 0.10,
		Efficiency:  0.10,
		Style:       0.05,
	}
}

// Calculate computes the rating for a listing using the default weights.
// The reference time fixes "vehicle age" so results are reproducible.
func Calculate(l *domain.Listing, at time.Time) domain.Rating {
	return CalculateWithWeights(l, at, DefaultWeights())
}

// CalculateWithWeights computes the rating for a listing with custom weights.
func CalculateWithWeights(l *domain.Listing, at time.Time, w Weights) domain.Rating {
	b := domain.Breakdown{
		Value:       valueScore(l, at),
		Reliability: reliabilityScore(l, at),
		Features:    featuresScore(l),
		Condition:   conditionScore(l),
		Performance: performanceScore(l),
		Efficiency:  efficiencyScore(l),
		Style:       styleScore(l, at),
	}

	total := b.Value*w.Value +
		b.Reliability*w.Reliability +
		b.Features*w.Features +
		b.Condition*w.Condition +
		b.Performance*w.Performance +
		b.Efficiency*w.Efficiency +
		b.Style*w.Style

	overall := int(math.Round(total))
	if overall > 100 {
		overall = 100
	}
	if overall < 0 {
		overall = 0
	}

	strengths, weaknesses, recommendations := analyze(b, overall)

	return domain.Rating{
		OverallScore:    overall,
		Breakdown:       b,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: recommendations,
	}
}

// valueScore compares the asking price against the estimated market value
// and rewards newer vehicles.
func valueScore(l *domain.Listing, at time.Time) float64 {
	score := 70.0

	market := EstimateMarketValue(l, at)
	ratio := l.Price / market

	switch {
	case ratio < 0.8:
		score += 25 // well under market
	case ratio < 0.9:
		score += 20
	case ratio < 1.0:
		score += 15
	case ratio < 1.1:
		score += 10
	case ratio < 1.2:
		score += 5
	default:
		score -= 5
	}

	switch age := l.Age(at); {
	case age <= 1:
		score += 15
	case age <= 3:
		score += 10
	case age <= 5:
		score += 5
	case age <= 8:
		// no adjustment
	default:
		score -= 5
	}

	return clamp(score)
}

// reliabilityScore blends the brand reliability table with age and
// annualized mileage. The base is averaged with the brand score before
// the age and mileage adjustments apply.
func reliabilityScore(l *domain.Listing, at time.Time) float64 {
	score := 70.0

	brand, ok := brandReliability[l.Make]
	if !ok {
		brand = defaultBrandReliability
	}
	score = (score + brand) / 2

	age := l.Age(at)
	switch {
	case age <= 2:
		score += 15
	case age <= 5:
		score += 10
	case age <= 10:
		score += 5
	case age <= 15:
		// no adjustment
	default:
		score -= 5
	}

	if miles, ok := l.MileageNumber(); ok {
		perYear := float64(miles) / math.Max(1, float64(age))
		switch {
		case perYear < 10000:
			score += 15
		case perYear < 15000:
			score += 10
		case perYear < 20000:
			score += 5
		default:
			score -= 5
		}
	}

	return clamp(score)
}

// featuresScore sums option weights (capped), then adds transmission,
// drivetrain, and engine bonuses.
func featuresScore(l *domain.Listing) float64 {
	score := 60.0

	var featureTotal float64
	for _, opt := range l.TopOptions {
		w, ok := featureWeights[opt]
		if !ok {
			w = defaultFeatureWeight
		}
		featureTotal += w
	}
	score += math.Min(30, featureTotal/6)

	switch deref(l.Transmission) {
	case "Manual":
		score += 8
	case "Automatic":
		score += 5
	}

	switch deref(l.Drivetrain) {
	case "AWD", "4WD":
		score += 10
	}

	engine := deref(l.Engine)
	if strings.Contains(engine, "Turbo") || strings.Contains(engine, "Supercharged") {
		score += 8
	}
	if l.Type == domain.TypeEV {
		score += 15
	}

	return clamp(score)
}

// conditionScore reflects accident history, service records, condition
// grade, and dealer reputation. Absent fields contribute nothing.
func conditionScore(l *domain.Listing) float64 {
	score := 75.0

	if l.NoAccidents != nil {
		if *l.NoAccidents {
			score += 20
		} else {
			score -= 5
		}
	}

	if l.ServiceRecords != nil {
		if *l.ServiceRecords {
			score += 15
		} else {
			score -= 5
		}
	}

	switch deref(l.VehicleCondition) {
	case "New":
		score += 20
	case "Certified":
		score += 15
	case "Used":
		score += 5
	}

	if l.DealerRating != nil {
		switch r := *l.DealerRating; {
		case r >= 4.5:
			score += 10
		case r >= 4.0:
			score += 8
		case r >= 3.5:
			score += 5
		case r < 3.0:
			score -= 5
		}
	}

	return clamp(score)
}

// performanceScore reads engine keywords, transmission, and drivetrain,
// then applies the per-type multiplier.
func performanceScore(l *domain.Listing) float64 {
	score := 70.0

	engine := deref(l.Engine)
	switch {
	case strings.Contains(engine, "V8"):
		score += 20
	case strings.Contains(engine, "V6"):
		score += 15
	case strings.Contains(engine, "6 Cyl"):
		score += 12
	case strings.Contains(engine, "4 Cyl"):
		score += 8
	case strings.Contains(engine, "Electric"):
		score += 18
	}

	switch deref(l.Transmission) {
	case "Manual":
		score += 10
	case "Automatic":
		score += 8
	case "CVT":
		score += 5
	}

	switch deref(l.Drivetrain) {
	case "AWD":
		score += 12
	case "4WD":
		score += 10
	case "RWD":
		score += 8
	case "FWD":
		score += 5
	}

	score *= multiplierFor(l.Type).performance

	return clamp(score)
}

// efficiencyScore rewards EV range bands, average MPG bands, and fuel type,
// then applies the per-type multiplier.
func efficiencyScore(l *domain.Listing) float64 {
	score := 70.0

	if l.Type == domain.TypeEV && l.Range != nil {
		switch r := *l.Range; {
		case r >= 300:
			score += 25
		case r >= 250:
			score += 20
		case r >= 200:
			score += 15
		case r >= 150:
			score += 10
		default:
			score += 5
		}
	}

	city, cityOK := parseLeadingInt(deref(l.MPGCity))
	highway, hwyOK := parseLeadingInt(deref(l.MPGHighway))
	if cityOK && hwyOK {
		switch avg := float64(city+highway) / 2; {
		case avg >= 35:
			score += 20
		case avg >= 30:
			score += 15
		case avg >= 25:
			score += 10
		case avg >= 20:
			score += 5
		}
	}

	switch deref(l.FuelType) {
	case "Electric":
		score += 20
	case "Hybrid":
		score += 15
	case "Gasoline":
		score += 5
	}

	score *= multiplierFor(l.Type).efficiency

	return clamp(score)
}

// styleScore reflects age, brand appeal, and body style, then applies the
// per-type multiplier. Luxury membership wins over sporty, sporty over
// reliable; only the first matching list counts.
func styleScore(l *domain.Listing, at time.Time) float64 {
	score := 75.0

	switch age := l.Age(at); {
	case age <= 2:
		score += 20
	case age <= 5:
		score += 15
	case age <= 8:
		score += 10
	case age <= 12:
		score += 5
	}

	switch {
	case slices.Contains(luxuryBrands, l.Make):
		score += 10
	case slices.Contains(sportyBrands, l.Make):
		score += 8
	case slices.Contains(reliableBrands, l.Make):
		score += 5
	}

	switch deref(l.BodyStyle) {
	case "Convertible":
		score += 15
	case "Coupe":
		score += 10
	case "Hatchback":
		score += 5
	}

	score *= multiplierFor(l.Type).style

	return clamp(score)
}

func clamp(score float64) float64 {
	return math.Min(100, math.Max(0, score))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// parseLeadingInt parses the leading integer of a numeric string such as
// "28" or "28 mpg". Returns false when there is no leading digit.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
