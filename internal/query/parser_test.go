package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carexpo/car-expo/internal/query"
	domain "github.com/carexpo/car-expo/pkg/types"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		text         string
		wantType     *domain.VehicleType
		wantMaxPrice *float64
	}{
		{
			name:         "ev under 25k",
			text:         "EV under $25k",
			wantType:     typePtr(domain.TypeEV),
			wantMaxPrice: pricePtr(25000),
		},
		{
			name:         "sedans under 20k",
			text:         "Sedans under $20k low mileage",
			wantType:     typePtr(domain.TypeSedan),
			wantMaxPrice: pricePtr(20000),
		},
		{
			name: "no recognizable filters",
			text: "no filters here",
		},
		{
			name:     "electric keyword maps to ev",
			text:     "cheap electric commuter",
			wantType: typePtr(domain.TypeEV),
		},
		{
			name:     "ev beats suv when both present",
			text:     "electric suv",
			wantType: typePtr(domain.TypeEV),
		},
		{
			name:     "suv beats sedan when both present",
			text:     "suv or sedan",
			wantType: typePtr(domain.TypeSUV),
		},
		{
			name:         "truck with plain number bound",
			text:         "truck below 35000",
			wantType:     typePtr(domain.TypeTruck),
			wantMaxPrice: pricePtr(35000),
		},
		{
			name:         "max keyword",
			text:         "max $18k",
			wantMaxPrice: pricePtr(18000),
		},
		{
			name:         "less-than sign",
			text:         "something < 12k",
			wantMaxPrice: pricePtr(12000),
		},
		{
			name:         "bare dollar amount fallback",
			text:         "around $20k would be nice",
			wantMaxPrice: pricePtr(20000),
		},
		{
			name:         "bare dollar without k",
			text:         "$15000 budget",
			wantMaxPrice: pricePtr(15000),
		},
		{
			name:         "bound word wins over bare dollar",
			text:         "under 10k but I could stretch to $30k",
			wantMaxPrice: pricePtr(10000),
		},
		{
			name:     "word containing ev letters does not match",
			text:     "never mind the price",
			wantType: nil,
		},
		{
			name: "k starting a longer word still means thousands",
			text: "under 25 kilometers away",
			// any "k" after the number scales it, word boundary or not
			wantMaxPrice: pricePtr(25000),
		},
		{
			name:         "mixed case",
			text:         "SUV UNDER $9K",
			wantType:     typePtr(domain.TypeSUV),
			wantMaxPrice: pricePtr(9000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := query.Parse(tt.text)

			if tt.wantType == nil {
				assert.Nil(t, got.Type)
			} else {
				require.NotNil(t, got.Type)
				assert.Equal(t, *tt.wantType, *got.Type)
			}

			if tt.wantMaxPrice == nil {
				assert.Nil(t, got.MaxPrice)
			} else {
				require.NotNil(t, got.MaxPrice)
				assert.InDelta(t, *tt.wantMaxPrice, *got.MaxPrice, 0.001)
			}
		})
	}
}

func TestParse_EmptyString(t *testing.T) {
	t.Parallel()

	got := query.Parse("")
	assert.Nil(t, got.Type)
	assert.Nil(t, got.MaxPrice)
}

func typePtr(t domain.VehicleType) *domain.VehicleType { return &t }
func pricePtr(p float64) *float64                      { return &p }
