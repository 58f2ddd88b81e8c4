package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/carexpo/car-expo/pkg/types"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func listing(id, make, model string, year int, price float64, vt domain.VehicleType) domain.Listing {
	return domain.Listing{
		ID:    id,
		Make:  make,
		Model: model,
		Year:  year,
		Price: price,
		Image: "https://example.com/" + id + ".jpg",
		Type:  vt,
	}
}

func typePtr(t domain.VehicleType) *domain.VehicleType { return &t }
func pricePtr(p float64) *float64                      { return &p }

func TestSelect_UIFilter(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		listing("a", "Toyota", "Camry", 2022, 24000, domain.TypeSedan),
		listing("b", "Honda", "CR-V", 2023, 31000, domain.TypeSUV),
		listing("c", "Ford", "F-150", 2021, 42000, domain.TypeTruck),
		listing("d", "Mazda", "CX-5", 2022, 28000, domain.TypeSUV),
	}

	got := Select(listings, Options{Filter: "suv"}, testNow)
	require.Len(t, got, 2)
	for _, s := range got {
		assert.Equal(t, domain.TypeSUV, s.Listing.Type)
	}
}

func TestSelect_AllFilterKeepsEverything(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		listing("a", "Toyota", "Camry", 2022, 24000, domain.TypeSedan),
		listing("b", "Honda", "CR-V", 2023, 31000, domain.TypeSUV),
	}

	assert.Len(t, Select(listings, Options{Filter: "all"}, testNow), 2)
	assert.Len(t, Select(listings, Options{}, testNow), 2)
}

func TestSelect_ParsedQueryFilters(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		listing("a", "Toyota", "Camry", 2022, 24000, domain.TypeSedan),
		listing("b", "Tesla", "Model 3", 2023, 38000, domain.TypeEV),
		listing("c", "Nissan", "Leaf", 2022, 21000, domain.TypeEV),
		listing("d", "Hyundai", "Kona Electric", 2023, 26000, domain.TypeEV),
	}

	got := Select(listings, Options{
		Query: domain.ParsedQuery{
			Type:     typePtr(domain.TypeEV),
			MaxPrice: pricePtr(25000),
		},
	}, testNow)

	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Listing.ID)
}

func TestSelect_PriceBoundaryInclusive(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		listing("a", "Kia", "Forte", 2022, 20000, domain.TypeSedan),
		listing("b", "Kia", "K5", 2022, 20001, domain.TypeSedan),
	}

	got := Select(listings, Options{
		Query: domain.ParsedQuery{MaxPrice: pricePtr(20000)},
	}, testNow)

	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Listing.ID)
}

func TestSelect_EmptyResultIsNormal(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		listing("a", "Toyota", "Camry", 2022, 24000, domain.TypeSedan),
	}

	got := Select(listings, Options{Filter: "truck"}, testNow)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSelect_SortsDescendingByOverall(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		listing("old", "Yugo", "GV", 2010, 30000, domain.TypeSedan),
		listing("new", "Toyota", "Camry", 2024, 24000, domain.TypeSedan),
	}

	got := Select(listings, Options{}, testNow)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Listing.ID)
	assert.GreaterOrEqual(t, got[0].Rating.OverallScore, got[1].Rating.OverallScore)
}

func TestSelect_SortBySubScore(t *testing.T) {
	t.Parallel()

	// Identical cars except body type; the truck multiplier drags its
	// efficiency score well below the sedan's.
	listings := []domain.Listing{
		listing("truck", "Toyota", "Tundra", 2022, 24000, domain.TypeTruck),
		listing("sedan", "Toyota", "Camry", 2022, 24000, domain.TypeSedan),
	}

	got := Select(listings, Options{SortBy: "efficiency"}, testNow)
	require.Len(t, got, 2)
	assert.Equal(t, "sedan", got[0].Listing.ID)
	assert.Greater(t, got[0].Rating.Breakdown.Efficiency, got[1].Rating.Breakdown.Efficiency)
}

func TestSelect_StableOrderForTies(t *testing.T) {
	t.Parallel()

	// Identical listings rate identically, so input order must survive.
	listings := []domain.Listing{
		listing("first", "Honda", "Civic", 2022, 23000, domain.TypeSedan),
		listing("second", "Honda", "Civic", 2022, 23000, domain.TypeSedan),
		listing("third", "Honda", "Civic", 2022, 23000, domain.TypeSedan),
	}

	got := Select(listings, Options{}, testNow)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Listing.ID)
	assert.Equal(t, "second", got[1].Listing.ID)
	assert.Equal(t, "third", got[2].Listing.ID)
}

func TestSelect_UnknownSortKeyFallsBackToOverall(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		listing("old", "Yugo", "GV", 2010, 30000, domain.TypeSedan),
		listing("new", "Toyota", "Camry", 2024, 24000, domain.TypeSedan),
	}

	got := Select(listings, Options{SortBy: "bogus"}, testNow)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Listing.ID)
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		listing("b", "Yugo", "GV", 2010, 30000, domain.TypeSedan),
		listing("a", "Toyota", "Camry", 2024, 24000, domain.TypeSedan),
	}

	_ = Select(listings, Options{}, testNow)
	assert.Equal(t, "b", listings[0].ID)
	assert.Equal(t, "a", listings[1].ID)
}
