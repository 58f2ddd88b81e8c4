package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carexpo/car-expo/internal/api/handlers"
	"github.com/carexpo/car-expo/internal/catalog"
	"github.com/carexpo/car-expo/pkg/rating"
	domain "github.com/carexpo/car-expo/pkg/types"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Listing{
		{
			ID: "camry-1", Make: "Toyota", Model: "Camry", Year: 2023,
			Price: 26400, Image: "https://example.com/camry.jpg", Type: domain.TypeSedan,
		},
		{
			ID: "rav4-1", Make: "Toyota", Model: "RAV4", Year: 2022,
			Price: 28500, Image: "https://example.com/rav4.jpg", Type: domain.TypeSUV,
		},
		{
			ID: "bolt-1", Make: "Chevrolet", Model: "Bolt EV", Year: 2022,
			Price: 19990, Image: "https://example.com/bolt.jpg", Type: domain.TypeEV,
		},
	})
}

func TestListCars_All(t *testing.T) {
	t.Parallel()

	h := handlers.NewCarsHandler(testCatalog(), rating.DefaultWeights())
	_, api := humatest.New(t)
	handlers.RegisterCarRoutes(api, h)

	resp := api.Get("/api/v1/cars")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":3`)
	assert.Contains(t, resp.Body.String(), "camry-1")
}

func TestListCars_TypeFilter(t *testing.T) {
	t.Parallel()

	h := handlers.NewCarsHandler(testCatalog(), rating.DefaultWeights())
	_, api := humatest.New(t)
	handlers.RegisterCarRoutes(api, h)

	resp := api.Get("/api/v1/cars?type=suv")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":1`)
	assert.Contains(t, resp.Body.String(), "rav4-1")
	assert.NotContains(t, resp.Body.String(), "camry-1")
}

func TestGetCar_Success(t *testing.T) {
	t.Parallel()

	h := handlers.NewCarsHandler(testCatalog(), rating.DefaultWeights())
	_, api := humatest.New(t)
	handlers.RegisterCarRoutes(api, h)

	resp := api.Get("/api/v1/cars/camry-1")
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, "camry-1")
	assert.Contains(t, body, "overallScore")
	assert.Contains(t, body, "grade")
	assert.Contains(t, body, "market_value")
}

func TestGetCar_NotFound(t *testing.T) {
	t.Parallel()

	h := handlers.NewCarsHandler(testCatalog(), rating.DefaultWeights())
	_, api := humatest.New(t)
	handlers.RegisterCarRoutes(api, h)

	resp := api.Get("/api/v1/cars/nonexistent")
	require.Equal(t, http.StatusNotFound, resp.Code)
}
