package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/carexpo/car-expo/pkg/types"
)

func TestToListing_FullRecord(t *testing.T) {
	t.Parallel()

	rec := ScrapedRecord{
		VIN:               "4T1G11AK5PU123456",
		Year:              "2023",
		Make:              "Toyota",
		Model:             "Camry",
		Trim:              "SE",
		Price:             "$26,400",
		Mileage:           "14,600 mi",
		Location:          "Phoenix, AZ",
		Dealer:            "Camelback Toyota",
		DealerRating:      "4.5",
		DealerReviewCount: "812",
		Engine:            "2.5L 4 Cyl",
		Transmission:      "Automatic",
		Drivetrain:        "FWD",
		FuelType:          "Gasoline",
		MPGCity:           "28",
		MPGHighway:        "39",
		BodyStyle:         "Sedan",
		VehicleCondition:  "Certified",
		ImageURL:          "https://img.example.com/camry.jpg",
		TopOptions:        []string{"Heated Seats", "Backup Camera"},
		NoAccidents:       "true",
		ServiceRecords:    "yes",
	}

	l, ok := rec.ToListing()
	require.True(t, ok)

	assert.Equal(t, "4t1g11ak5pu123456", l.ID)
	assert.Equal(t, 2023, l.Year)
	assert.Equal(t, 26400.0, l.Price)
	assert.Equal(t, domain.TypeSedan, l.Type)
	assert.Equal(t, "https://img.example.com/camry.jpg", l.Image)

	require.NotNil(t, l.DealerRating)
	assert.Equal(t, 4.5, *l.DealerRating)
	require.NotNil(t, l.DealerReviewCount)
	assert.Equal(t, 812, *l.DealerReviewCount)
	require.NotNil(t, l.NoAccidents)
	assert.True(t, *l.NoAccidents)
	require.NotNil(t, l.ServiceRecords)
	assert.True(t, *l.ServiceRecords)
	assert.Equal(t, []string{"Heated Seats", "Backup Camera"}, l.TopOptions)
}

func TestToListing_MissingVINRejected(t *testing.T) {
	t.Parallel()

	_, ok := ScrapedRecord{Year: "2022", Make: "Honda"}.ToListing()
	assert.False(t, ok)
}

func TestToListing_Fallbacks(t *testing.T) {
	t.Parallel()

	l, ok := ScrapedRecord{
		VIN:   "VINONLY123",
		Year:  "n/a",
		Price: "call for price",
	}.ToListing()
	require.True(t, ok)

	assert.Equal(t, fallbackYear, l.Year)
	assert.Equal(t, 0.0, l.Price)
	assert.Equal(t, placeholderImage, l.Image)
	assert.Nil(t, l.Mileage)
	assert.Nil(t, l.NoAccidents)
}

func TestToListing_ElectricFuelWinsOverBodyStyle(t *testing.T) {
	t.Parallel()

	l, ok := ScrapedRecord{
		VIN:       "5YJ3E1EA8PF123456",
		Year:      "2023",
		FuelType:  "Electric",
		BodyStyle: "Sedan",
	}.ToListing()
	require.True(t, ok)
	assert.Equal(t, domain.TypeEV, l.Type)
}

func TestToListing_BodyStyleMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bodyStyle string
		want      domain.VehicleType
	}{
		{"SUV", domain.TypeSUV},
		{"Crossover", domain.TypeSUV},
		{"Pickup Truck", domain.TypeTruck},
		{"Hatchback", domain.TypeHatchback},
		{"", domain.TypeSedan},
		{"Minivan", domain.VehicleType("minivan")},
	}

	for _, tc := range cases {
		l, ok := ScrapedRecord{VIN: "X", BodyStyle: tc.bodyStyle}.ToListing()
		require.True(t, ok)
		assert.Equal(t, tc.want, l.Type, "body style %q", tc.bodyStyle)
	}
}

func TestConvertBatch_DropsBadRecords(t *testing.T) {
	t.Parallel()

	got := ConvertBatch([]ScrapedRecord{
		{VIN: "A1", Year: "2022", Make: "Toyota"},
		{Year: "2021", Make: "Honda"},
		{VIN: "B2", Year: "2020", Make: "Ford"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "b2", got[1].ID)
}
