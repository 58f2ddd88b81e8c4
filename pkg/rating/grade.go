package rating

import (
	domain "github.com/carexpo/car-expo/pkg/types"
)

// gradeBand is one contiguous score band. Bands are closed-open: a score on
// a boundary belongs to the higher band (90 is A+, not A).
type gradeBand struct {
	min   float64
	grade domain.Grade
}

// gradeBands in descending order. The final band catches everything below 40.
var gradeBands = []gradeBand{
	{90, domain.Grade{Grade: "A+", Color: "#10B981", Description: "Exceptional"}},
	{85, domain.Grade{Grade: "A", Color: "#10B981", Description: "Excellent"}},
	{80, domain.Grade{Grade: "A-", Color: "#34D399", Description: "Very Good"}},
	{75, domain.Grade{Grade: "B+", Color: "#34D399", Description: "Good"}},
	{70, domain.Grade{Grade: "B", Color: "#FBBF24", Description: "Above Average"}},
	{65, domain.Grade{Grade: "B-", Color: "#FBBF24", Description: "Average"}},
	{60, domain.Grade{Grade: "C+", Color: "#F59E0B", Description: "Below Average"}},
	{55, domain.Grade{Grade: "C", Color: "#F59E0B", Description: "Fair"}},
	{50, domain.Grade{Grade: "C-", Color: "#EF4444", Description: "Poor"}},
	{40, domain.Grade{Grade: "D", Color: "#EF4444", Description: "Very Poor"}},
}

var failingGrade = domain.Grade{Grade: "F", Color: "#DC2626", Description: "Avoid"}

// GradeFor maps a 0-100 score onto its letter grade band.
func GradeFor(score float64) domain.Grade {
	for _, b := range gradeBands {
		if score >= b.min {
			return b.grade
		}
	}
	return failingGrade
}
