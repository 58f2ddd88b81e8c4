// Package domain defines the core business types for car-expo.
package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// VehicleType represents the coarse vehicle category used for filtering
// and for the per-type rating multipliers.
type VehicleType string

// Vehicle type constants. The set is open: unrecognized values keep their
// raw text and fall back to default behavior wherever a table is keyed by type.
const (
	TypeSedan       VehicleType = "sedan"
	TypeSUV         VehicleType = "suv"
	TypeTruck       VehicleType = "truck"
	TypeEV          VehicleType = "ev"
	TypeCoupe       VehicleType = "coupe"
	TypeConvertible VehicleType = "convertible"
	TypeHatchback   VehicleType = "hatchback"
	TypeWagon       VehicleType = "wagon"
)

// KnownVehicleTypes lists the categories with dedicated rating multipliers.
var KnownVehicleTypes = []VehicleType{
	TypeSedan, TypeSUV, TypeTruck, TypeEV,
	TypeCoupe, TypeConvertible, TypeHatchback, TypeWagon,
}

// NormalizeVehicleType lower-cases s and returns it as a VehicleType.
// Unknown categories pass through unchanged so they hit default table entries.
func NormalizeVehicleType(s string) VehicleType {
	return VehicleType(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether t is one of the categories with dedicated multipliers.
func (t VehicleType) Known() bool {
	for _, k := range KnownVehicleTypes {
		if t == k {
			return true
		}
	}
	return false
}

// MonthlyPayment holds the dealer-estimated financing terms for a listing.
type MonthlyPayment struct {
	Amount       float64 `json:"amount"`
	DownPayment  float64 `json:"down_payment"`
	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
	TermMonths   int     `json:"term_months"`
}

// Listing represents one vehicle offering. Required fields are plain values;
// every enrichment field is a pointer so that "absent" is distinguishable
// from a zero or false value. The rating engine treats absent as
// "contributes nothing", never as a penalty.
type Listing struct {
	ID    string      `json:"id"`
	Make  string      `json:"make"`
	Model string      `json:"model"`
	Year  int         `json:"year"`
	Price float64     `json:"price"`
	Image string      `json:"image"`
	Type  VehicleType `json:"type"`

	// Optional enrichment
	Range             *int            `json:"range,omitempty"` // EV miles
	Mileage           *string         `json:"mileage,omitempty"`
	Location          *string         `json:"location,omitempty"`
	Dealer            *string         `json:"dealer,omitempty"`
	Trim              *string         `json:"trim,omitempty"`
	ExteriorColor     *string         `json:"exterior_color,omitempty"`
	InteriorColor     *string         `json:"interior_color,omitempty"`
	Engine            *string         `json:"engine,omitempty"`
	Transmission      *string         `json:"transmission,omitempty"`
	Drivetrain        *string         `json:"drivetrain,omitempty"`
	FuelType          *string         `json:"fuel_type,omitempty"`
	BodyStyle         *string         `json:"body_style,omitempty"`
	Displacement      *string         `json:"displacement,omitempty"`
	NoAccidents       *bool           `json:"no_accidents,omitempty"`
	ServiceRecords    *bool           `json:"service_records,omitempty"`
	VehicleCondition  *string         `json:"vehicle_condition,omitempty"` // New, Used, Certified
	DealerRating      *float64        `json:"dealer_rating,omitempty"`     // 0-5
	DealerReviewCount *int            `json:"dealer_review_count,omitempty"`
	MPGCity           *string         `json:"mpg_city,omitempty"`
	MPGHighway        *string         `json:"mpg_highway,omitempty"`
	TopOptions        []string        `json:"top_options,omitempty"`
	MonthlyPayment    *MonthlyPayment `json:"monthly_payment,omitempty"`
	ListingURL        *string         `json:"listing_url,omitempty"`
}

var nonDigits = regexp.MustCompile(`[^\d]`)

// MileageNumber parses the free-text mileage field ("25,000 mi") by stripping
// every non-digit. The second return is false when the field is absent or
// contains no digits at all.
func (l *Listing) MileageNumber() (int, bool) {
	if l.Mileage == nil {
		return 0, false
	}
	digits := nonDigits.ReplaceAllString(*l.Mileage, "")
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Age returns the listing's age in whole years at the given time, floored at 0.
func (l *Listing) Age(at time.Time) int {
	age := at.Year() - l.Year
	if age < 0 {
		return 0
	}
	return age
}

// Breakdown holds the seven named sub-scores of a rating. Each value is
// already clamped to [0,100]; the three multiplier-adjusted factors may be
// fractional before clamping.
type Breakdown struct {
	Value       float64 `json:"value"`
	Reliability float64 `json:"reliability"`
	Features    float64 `json:"features"`
	Condition   float64 `json:"condition"`
	Performance float64 `json:"performance"`
	Efficiency  float64 `json:"efficiency"`
	Style       float64 `json:"style"`
}

// ByKey returns the sub-score named by key ("value", "reliability", ...).
// The second return is false for unknown keys.
func (b Breakdown) ByKey(key string) (float64, bool) {
	switch key {
	case "value":
		return b.Value, true
	case "reliability":
		return b.Reliability, true
	case "features":
		return b.Features, true
	case "condition":
		return b.Condition, true
	case "performance":
		return b.Performance, true
	case "efficiency":
		return b.Efficiency, true
	case "style":
		return b.Style, true
	}
	return 0, false
}

// Rating is the derived desirability assessment for a single listing.
// It is recomputed on demand and never persisted.
type Rating struct {
	OverallScore    int       `json:"overallScore"` // 0-100, clamped
	Breakdown       Breakdown `json:"breakdown"`
	Strengths       []string  `json:"strengths"`
	Weaknesses      []string  `json:"weaknesses"`
	Recommendations []string  `json:"recommendations"`
}

// Grade maps a 0-100 score onto a letter grade band with a display color
// and a one-word description.
type Grade struct {
	Grade       string `json:"grade"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// ParsedQuery holds the coarse filters inferred deterministically from a
// free-text search string. Nil means "no constraint", never zero: a zero
// max price would wrongly exclude everything.
type ParsedQuery struct {
	Type     *VehicleType `json:"type,omitempty"`
	MaxPrice *float64     `json:"maxPrice,omitempty"`
}

// QueryIntent is the best-effort structured object returned by the external
// language-model extraction service. All fields are optional free text.
type QueryIntent struct {
	Make     string   `json:"make,omitempty"`
	Model    string   `json:"model,omitempty"`
	Year     string   `json:"year,omitempty"`
	Type     string   `json:"type,omitempty"`
	Price    string   `json:"price,omitempty"`
	Features []string `json:"features,omitempty"`
}

// Empty reports whether the extraction produced no usable fields.
func (q QueryIntent) Empty() bool {
	return q.Make == "" && q.Model == "" && q.Year == "" &&
		q.Type == "" && q.Price == "" && len(q.Features) == 0
}
