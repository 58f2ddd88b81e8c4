package catalog

import (
	"context"

	domain "github.com/carexpo/car-expo/pkg/types"
)

// Static serves the built-in fixture inventory. It backs the service
// whenever no live feed is configured and never fails.
type Static struct{}

var _ Source = Static{}

func (Static) Fetch(_ context.Context) ([]domain.Listing, error) {
	return FixtureListings(), nil
}

func str(s string) *string   { return &s }
func boolp(b bool) *bool     { return &b }
func intp(n int) *int        { return &n }
func f64(f float64) *float64 { return &f }

// FixtureListings returns a fresh copy of the demo inventory. Callers
// may mutate the result freely.
func FixtureListings() []domain.Listing {
	return []domain.Listing{
		{
			ID:    "tesla-model3-2023",
			Make:  "Tesla",
			Model: "Model 3",
			Year:  2023,
			Price: 38990,
			Image: "https://images.carexpo.dev/tesla-model3.jpg",
			Type:  domain.TypeEV,

			Range:            intp(272),
			Mileage:          str("12,400 mi"),
			Location:         str("Tempe, AZ"),
			Dealer:           str("Desert EV Outlet"),
			ExteriorColor:    str("Pearl White"),
			InteriorColor:    str("Black"),
			Engine:           str("Electric"),
			Transmission:     str("Automatic"),
			Drivetrain:       str("RWD"),
			FuelType:         str("Electric"),
			BodyStyle:        str("Sedan"),
			NoAccidents:      boolp(true),
			ServiceRecords:   boolp(true),
			VehicleCondition: str("Used"),
			DealerRating:     f64(4.7),
			TopOptions:       []string{"Autopilot", "Heated Seats", "Navigation System", "Backup Camera"},
		},
		{
			ID:    "toyota-rav4-2022",
			Make:  "Toyota",
			Model: "RAV4",
			Year:  2022,
			Price: 28500,
			Image: "https://images.carexpo.dev/toyota-rav4.jpg",
			Type:  domain.TypeSUV,

			Mileage:          str("31,200 mi"),
			Location:         str("Phoenix, AZ"),
			Dealer:           str("Camelback Toyota"),
			ExteriorColor:    str("Magnetic Gray"),
			Engine:           str("2.5L 4 Cyl"),
			Transmission:     str("Automatic"),
			Drivetrain:       str("AWD"),
			FuelType:         str("Gasoline"),
			BodyStyle:        str("SUV"),
			MPGCity:          str("27"),
			MPGHighway:       str("35"),
			NoAccidents:      boolp(true),
			ServiceRecords:   boolp(true),
			VehicleCondition: str("Certified"),
			DealerRating:     f64(4.5),
			TopOptions:       []string{"Backup Camera", "Blind Spot Monitor", "Apple CarPlay", "Lane Departure Warning"},
		},
		{
			ID:    "honda-civic-2021",
			Make:  "Honda",
			Model: "Civic",
			Year:  2021,
			Price: 21900,
			Image: "https://images.carexpo.dev/honda-civic.jpg",
			Type:  domain.TypeSedan,

			Mileage:          str("44,800 mi"),
			Location:         str("Mesa, AZ"),
			Dealer:           str("Superstition Honda"),
			ExteriorColor:    str("Sonic Gray"),
			Engine:           str("1.5L 4 Cyl Turbo"),
			Transmission:     str("CVT"),
			Drivetrain:       str("FWD"),
			FuelType:         str("Gasoline"),
			BodyStyle:        str("Sedan"),
			MPGCity:          str("31"),
			MPGHighway:       str("40"),
			NoAccidents:      boolp(true),
			VehicleCondition: str("Used"),
			DealerRating:     f64(4.2),
			TopOptions:       []string{"Sunroof/Moonroof", "Android Auto", "Adaptive Cruise Control"},
		},
		{
			ID:    "ford-f150-2020",
			Make:  "Ford",
			Model: "F-150",
			Year:  2020,
			Price: 33750,
			Image: "https://images.carexpo.dev/ford-f150.jpg",
			Type:  domain.TypeTruck,

			Mileage:          str("58,900 mi"),
			Location:         str("Chandler, AZ"),
			Dealer:           str("San Tan Ford"),
			ExteriorColor:    str("Oxford White"),
			Engine:           str("3.5L V6 EcoBoost"),
			Transmission:     str("Automatic"),
			Drivetrain:       str("4WD"),
			FuelType:         str("Gasoline"),
			BodyStyle:        str("Truck"),
			MPGCity:          str("18"),
			MPGHighway:       str("24"),
			NoAccidents:      boolp(false),
			ServiceRecords:   boolp(true),
			VehicleCondition: str("Used"),
			DealerRating:     f64(3.9),
			TopOptions:       []string{"Tow Package", "Bed Liner", "Backup Camera", "Bluetooth"},
		},
		{
			ID:    "bmw-m340i-2022",
			Make:  "BMW",
			Model: "M340i",
			Year:  2022,
			Price: 47200,
			Image: "https://images.carexpo.dev/bmw-m340i.jpg",
			Type:  domain.TypeSedan,

			Mileage:          str("19,300 mi"),
			Location:         str("Scottsdale, AZ"),
			Dealer:           str("BMW North Scottsdale"),
			ExteriorColor:    str("Portimao Blue"),
			InteriorColor:    str("Cognac"),
			Engine:           str("3.0L 6 Cyl Turbo"),
			Transmission:     str("Automatic"),
			Drivetrain:       str("AWD"),
			FuelType:         str("Gasoline"),
			BodyStyle:        str("Sedan"),
			MPGCity:          str("23"),
			MPGHighway:       str("32"),
			NoAccidents:      boolp(true),
			ServiceRecords:   boolp(true),
			VehicleCondition: str("Certified"),
			DealerRating:     f64(4.8),
			TopOptions:       []string{"Leather Seats", "Premium Sound System", "Heads-up Display", "Adaptive Cruise Control", "Heated Seats"},
		},
		{
			ID:    "mazda-cx5-2023",
			Make:  "Mazda",
			Model: "CX-5",
			Year:  2023,
			Price: 29800,
			Image: "https://images.carexpo.dev/mazda-cx5.jpg",
			Type:  domain.TypeSUV,

			Mileage:          str("9,700 mi"),
			Location:         str("Gilbert, AZ"),
			Dealer:           str("Earnhardt Mazda"),
			ExteriorColor:    str("Soul Red Crystal"),
			Engine:           str("2.5L 4 Cyl"),
			Transmission:     str("Automatic"),
			Drivetrain:       str("AWD"),
			FuelType:         str("Gasoline"),
			BodyStyle:        str("SUV"),
			MPGCity:          str("24"),
			MPGHighway:       str("30"),
			NoAccidents:      boolp(true),
			ServiceRecords:   boolp(true),
			VehicleCondition: str("Certified"),
			DealerRating:     f64(4.6),
			TopOptions:       []string{"Leather Seats", "Bose Audio", "Blind Spot Monitor", "Apple CarPlay"},
		},
		{
			ID:    "chevrolet-bolt-2022",
			Make:  "Chevrolet",
			Model: "Bolt EV",
			Year:  2022,
			Price: 19990,
			Image: "https://images.carexpo.dev/chevy-bolt.jpg",
			Type:  domain.TypeEV,

			Range:            intp(259),
			Mileage:          str("22,100 mi"),
			Location:         str("Tempe, AZ"),
			Dealer:           str("AutoNation Chevrolet"),
			ExteriorColor:    str("Summit White"),
			Engine:           str("Electric"),
			Transmission:     str("Automatic"),
			Drivetrain:       str("FWD"),
			FuelType:         str("Electric"),
			BodyStyle:        str("Hatchback"),
			NoAccidents:      boolp(true),
			VehicleCondition: str("Used"),
			DealerRating:     f64(4.1),
			TopOptions:       []string{"Backup Camera", "Lane Keep Assist", "Wireless Charging"},
		},
		{
			ID:    "toyota-camry-2023",
			Make:  "Toyota",
			Model: "Camry",
			Year:  2023,
			Price: 26400,
			Image: "https://images.carexpo.dev/toyota-camry.jpg",
			Type:  domain.TypeSedan,

			Mileage:          str("14,600 mi"),
			Location:         str("Phoenix, AZ"),
			Dealer:           str("Camelback Toyota"),
			ExteriorColor:    str("Celestial Silver"),
			Engine:           str("2.5L 4 Cyl"),
			Transmission:     str("Automatic"),
			Drivetrain:       str("FWD"),
			FuelType:         str("Hybrid"),
			BodyStyle:        str("Sedan"),
			MPGCity:          str("51"),
			MPGHighway:       str("53"),
			NoAccidents:      boolp(true),
			ServiceRecords:   boolp(true),
			VehicleCondition: str("Certified"),
			DealerRating:     f64(4.5),
			TopOptions:       []string{"Heated Seats", "Adaptive Cruise Control", "Apple CarPlay", "Blind Spot Monitor"},
		},
	}
}
