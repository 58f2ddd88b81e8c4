package rating

import (
	domain "github.com/carexpo/car-expo/pkg/types"
)

// analyze generates the advisory strengths, weaknesses, and recommendations
// text from the factor breakdown. The text is display-only; nothing
// downstream computes on it.
func analyze(b domain.Breakdown, overall int) (strengths, weaknesses, recommendations []string) {
	if b.Value >= 80 {
		strengths = append(strengths, "Excellent value for money")
	} else if b.Value <= 40 {
		weaknesses = append(weaknesses, "May be overpriced for the market")
	}

	if b.Reliability >= 85 {
		strengths = append(strengths, "Highly reliable brand and model")
	} else if b.Reliability <= 50 {
		weaknesses = append(weaknesses, "Reliability concerns due to age or brand")
	}

	if b.Features >= 80 {
		strengths = append(strengths, "Well-equipped with modern features")
	} else if b.Features <= 40 {
		weaknesses = append(weaknesses, "Limited features and options")
	}

	if b.Condition >= 85 {
		strengths = append(strengths, "Excellent condition with clean history")
	} else if b.Condition <= 50 {
		weaknesses = append(weaknesses, "Condition concerns or accident history")
	}

	if b.Performance >= 80 {
		strengths = append(strengths, "Strong performance characteristics")
	} else if b.Performance <= 40 {
		weaknesses = append(weaknesses, "Limited performance capabilities")
	}

	if b.Efficiency >= 80 {
		strengths = append(strengths, "Excellent fuel efficiency or range")
	} else if b.Efficiency <= 40 {
		weaknesses = append(weaknesses, "Poor fuel efficiency")
	}

	if b.Value < 60 {
		recommendations = append(recommendations, "Consider negotiating the price or looking for similar models")
	}
	if b.Reliability < 60 {
		recommendations = append(recommendations, "Research common issues for this make/model/year")
	}
	if b.Features < 50 {
		recommendations = append(recommendations, "Consider aftermarket upgrades for missing features")
	}
	if b.Condition < 60 {
		recommendations = append(recommendations, "Get a professional inspection before purchase")
	}
	if b.Performance < 50 {
		recommendations = append(recommendations, "Test drive to ensure performance meets your needs")
	}
	if b.Efficiency < 50 {
		recommendations = append(recommendations, "Consider fuel costs in your budget calculations")
	}

	switch {
	case overall >= 85:
		recommendations = append(recommendations, "This is an excellent choice with strong scores across all categories")
	case overall >= 70:
		recommendations = append(recommendations, "This is a good choice with solid performance in most areas")
	case overall >= 55:
		recommendations = append(recommendations, "This car has some trade-offs - consider your priorities carefully")
	default:
		recommendations = append(recommendations, "Consider other options or negotiate significant improvements")
	}

	return strengths, weaknesses, recommendations
}
