package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carexpo/car-expo/internal/catalog"
	"github.com/carexpo/car-expo/pkg/rating"
	domain "github.com/carexpo/car-expo/pkg/types"
)

// CarsHandler handles car inventory endpoints.
type CarsHandler struct {
	catalog *catalog.Catalog
	weights rating.Weights
}

// NewCarsHandler creates a new CarsHandler.
func NewCarsHandler(cat *catalog.Catalog, weights rating.Weights) *CarsHandler {
	return &CarsHandler{catalog: cat, weights: weights}
}

// --- Input/Output types ---

// ListCarsInput is the input for listing the car inventory.
type ListCarsInput struct {
	Type string `query:"type" doc:"Filter by vehicle type" enum:"all,sedan,suv,truck,ev,coupe,convertible,hatchback,wagon,"`
}

// ListCarsOutput is the response for listing the car inventory.
type ListCarsOutput struct {
	Body struct {
		Cars  []domain.Listing `json:"cars"`
		Total int              `json:"total"`
	}
}

// GetCarInput is the input for getting a single car.
type GetCarInput struct {
	ID string `path:"id" doc:"Listing ID"`
}

// CarDetail is a listing together with its derived assessment.
type CarDetail struct {
	Car         domain.Listing `json:"car"`
	Rating      domain.Rating  `json:"rating"`
	Grade       domain.Grade   `json:"grade"`
	MarketValue float64        `json:"market_value"`
}

// GetCarOutput is the response for getting a single car.
type GetCarOutput struct {
	Body CarDetail
}

// --- Handlers ---

// ListCars returns the inventory, optionally filtered by vehicle type.
func (h *CarsHandler) ListCars(
	_ context.Context,
	input *ListCarsInput,
) (*ListCarsOutput, error) {
	all := h.catalog.All()

	cars := all
	if input.Type != "" && input.Type != "all" {
		want := domain.NormalizeVehicleType(input.Type)
		cars = make([]domain.Listing, 0, len(all))
		for _, l := range all {
			if l.Type == want {
				cars = append(cars, l)
			}
		}
	}

	resp := &ListCarsOutput{}
	resp.Body.Cars = cars
	resp.Body.Total = len(cars)
	return resp, nil
}

// GetCar returns a single car with its rating, grade, and market value.
func (h *CarsHandler) GetCar(
	_ context.Context,
	input *GetCarInput,
) (*GetCarOutput, error) {
	listing, ok := h.catalog.Get(input.ID)
	if !ok {
		return nil, huma.Error404NotFound("car not found")
	}

	now := time.Now()
	r := rating.CalculateWithWeights(&listing, now, h.weights)

	return &GetCarOutput{Body: CarDetail{
		Car:         listing,
		Rating:      r,
		Grade:       rating.GradeFor(float64(r.OverallScore)),
		MarketValue: rating.EstimateMarketValue(&listing, now),
	}}, nil
}

// RegisterCarRoutes registers car inventory endpoints with the Huma API.
func RegisterCarRoutes(api huma.API, h *CarsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-cars",
		Method:      http.MethodGet,
		Path:        "/api/v1/cars",
		Summary:     "List cars",
		Description: "Returns the car inventory, optionally filtered by vehicle type.",
		Tags:        []string{"cars"},
	}, h.ListCars)

	huma.Register(api, huma.Operation{
		OperationID: "get-car",
		Method:      http.MethodGet,
		Path:        "/api/v1/cars/{id}",
		Summary:     "Get a car by ID",
		Description: "Returns a single car with its rating, grade, and estimated market value.",
		Tags:        []string{"cars"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetCar)
}
