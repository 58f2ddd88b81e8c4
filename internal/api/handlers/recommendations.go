package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carexpo/car-expo/internal/catalog"
	"github.com/carexpo/car-expo/internal/query"
	"github.com/carexpo/car-expo/internal/recommend"
	"github.com/carexpo/car-expo/pkg/rating"
)

// RecommendationsHandler handles scored, ranked car recommendations.
type RecommendationsHandler struct {
	catalog *catalog.Catalog
	weights rating.Weights
}

// NewRecommendationsHandler creates a new RecommendationsHandler.
func NewRecommendationsHandler(cat *catalog.Catalog, weights rating.Weights) *RecommendationsHandler {
	return &RecommendationsHandler{catalog: cat, weights: weights}
}

// ListRecommendationsInput is the input for the recommendations endpoint.
type ListRecommendationsInput struct {
	Type   string `query:"type"    doc:"Explicit vehicle type filter"                   enum:"all,sedan,suv,truck,ev,coupe,convertible,hatchback,wagon,"`
	Q      string `query:"q"       doc:"Free-text search, parsed for type and price"`
	SortBy string `query:"sort_by" doc:"Ranking score"                                  enum:"overall,value,reliability,features,condition,performance,efficiency,style,"`
}

// ListRecommendationsOutput is the response for the recommendations endpoint.
type ListRecommendationsOutput struct {
	Body struct {
		Recommendations []recommend.Scored `json:"recommendations"`
		Total           int                `json:"total"`
	}
}

// ListRecommendations filters and ranks the inventory. The q parameter
// is parsed deterministically for a vehicle type and a price cap.
func (h *RecommendationsHandler) ListRecommendations(
	_ context.Context,
	input *ListRecommendationsInput,
) (*ListRecommendationsOutput, error) {
	scored := recommend.Select(h.catalog.All(), recommend.Options{
		Filter:  input.Type,
		Query:   query.Parse(input.Q),
		SortBy:  input.SortBy,
		Weights: &h.weights,
	}, time.Now())

	resp := &ListRecommendationsOutput{}
	resp.Body.Recommendations = scored
	resp.Body.Total = len(scored)
	return resp, nil
}

// RegisterRecommendationRoutes registers recommendation endpoints with the Huma API.
func RegisterRecommendationRoutes(api huma.API, h *RecommendationsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-recommendations",
		Method:      http.MethodGet,
		Path:        "/api/v1/recommendations",
		Summary:     "List recommendations",
		Description: "Returns the inventory scored and ranked, filtered by type and free-text query.",
		Tags:        []string{"recommendations"},
	}, h.ListRecommendations)
}
