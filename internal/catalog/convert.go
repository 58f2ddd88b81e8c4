package catalog

import (
	"strconv"
	"strings"

	domain "github.com/carexpo/car-expo/pkg/types"
)

// placeholderImage is substituted when a scraped record has no photo.
const placeholderImage = "https://images.carexpo.dev/placeholder.jpg"

// fallbackYear stands in for records whose model year failed to parse.
const fallbackYear = 2020

// ScrapedRecord mirrors the JSON rows emitted by the Carfax scraper.
// Every field is free text; conversion is where typing happens.
type ScrapedRecord struct {
	VIN               string   `json:"vin"`
	Year              string   `json:"year"`
	Make              string   `json:"make"`
	Model             string   `json:"model"`
	Trim              string   `json:"trim"`
	Price             string   `json:"price"`
	ListPrice         string   `json:"list_price"`
	Mileage           string   `json:"mileage"`
	Location          string   `json:"location"`
	Dealer            string   `json:"dealer"`
	DealerRating      string   `json:"dealer_rating"`
	DealerReviewCount string   `json:"dealer_review_count"`
	ExteriorColor     string   `json:"exterior_color"`
	InteriorColor     string   `json:"interior_color"`
	Engine            string   `json:"engine"`
	Displacement      string   `json:"displacement"`
	Transmission      string   `json:"transmission"`
	Drivetrain        string   `json:"drivetrain"`
	FuelType          string   `json:"fuel_type"`
	MPGCity           string   `json:"mpg_city"`
	MPGHighway        string   `json:"mpg_highway"`
	BodyStyle         string   `json:"body_style"`
	VehicleCondition  string   `json:"vehicle_condition"`
	ListingURL        string   `json:"listing_url"`
	ImageURL          string   `json:"image_url"`
	TopOptions        []string `json:"top_options"`
	NoAccidents       string   `json:"no_accidents"`
	ServiceRecords    string   `json:"service_records"`
}

// ToListing converts a scraped record into the domain model. Records
// without a VIN are unusable and return false.
func (r ScrapedRecord) ToListing() (domain.Listing, bool) {
	if strings.TrimSpace(r.VIN) == "" {
		return domain.Listing{}, false
	}

	l := domain.Listing{
		ID:    strings.ToLower(strings.TrimSpace(r.VIN)),
		Make:  strings.TrimSpace(r.Make),
		Model: strings.TrimSpace(r.Model),
		Year:  parseYear(r.Year),
		Price: parsePrice(r.Price),
		Image: r.ImageURL,
		Type:  vehicleTypeFromBodyStyle(r.BodyStyle, r.FuelType),
	}
	if l.Image == "" {
		l.Image = placeholderImage
	}

	l.Mileage = optStr(r.Mileage)
	l.Location = optStr(r.Location)
	l.Dealer = optStr(r.Dealer)
	l.Trim = optStr(r.Trim)
	l.ExteriorColor = optStr(r.ExteriorColor)
	l.InteriorColor = optStr(r.InteriorColor)
	l.Engine = optStr(r.Engine)
	l.Displacement = optStr(r.Displacement)
	l.Transmission = optStr(r.Transmission)
	l.Drivetrain = optStr(r.Drivetrain)
	l.FuelType = optStr(r.FuelType)
	l.BodyStyle = optStr(r.BodyStyle)
	l.VehicleCondition = optStr(r.VehicleCondition)
	l.MPGCity = optStr(r.MPGCity)
	l.MPGHighway = optStr(r.MPGHighway)
	l.ListingURL = optStr(r.ListingURL)
	l.TopOptions = r.TopOptions

	if v, err := strconv.ParseFloat(strings.TrimSpace(r.DealerRating), 64); err == nil {
		l.DealerRating = &v
	}
	if n, err := strconv.Atoi(strings.TrimSpace(r.DealerReviewCount)); err == nil {
		l.DealerReviewCount = &n
	}
	l.NoAccidents = optBool(r.NoAccidents)
	l.ServiceRecords = optBool(r.ServiceRecords)

	return l, true
}

// ConvertBatch converts records, silently dropping the unusable ones.
func ConvertBatch(records []ScrapedRecord) []domain.Listing {
	out := make([]domain.Listing, 0, len(records))
	for _, r := range records {
		if l, ok := r.ToListing(); ok {
			out = append(out, l)
		}
	}
	return out
}

func parseYear(s string) int {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 1900 {
		return fallbackYear
	}
	return y
}

// parsePrice strips currency formatting ("$28,500") before parsing.
// Unparseable prices read as 0.
func parsePrice(s string) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// vehicleTypeFromBodyStyle maps the scraper's body style onto a vehicle
// type, recognizing EVs by fuel type first since body style then only
// describes the shape.
func vehicleTypeFromBodyStyle(bodyStyle, fuelType string) domain.VehicleType {
	if strings.EqualFold(strings.TrimSpace(fuelType), "electric") {
		return domain.TypeEV
	}

	switch strings.ToLower(strings.TrimSpace(bodyStyle)) {
	case "suv", "crossover":
		return domain.TypeSUV
	case "truck", "pickup", "pickup truck":
		return domain.TypeTruck
	case "coupe":
		return domain.TypeCoupe
	case "convertible":
		return domain.TypeConvertible
	case "hatchback":
		return domain.TypeHatchback
	case "wagon":
		return domain.TypeWagon
	case "sedan", "":
		return domain.TypeSedan
	default:
		return domain.NormalizeVehicleType(bodyStyle)
	}
}

func optStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// optBool reads the scraper's loose truthy strings. Anything else,
// including empty, stays unknown.
func optBool(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return boolp(true)
	case "false", "no", "0":
		return boolp(false)
	}
	return nil
}
