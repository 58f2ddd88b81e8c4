package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carexpo/car-expo/internal/api/handlers"
	"github.com/carexpo/car-expo/internal/recommend"
	"github.com/carexpo/car-expo/pkg/rating"
)

type recommendationsBody struct {
	Recommendations []recommend.Scored `json:"recommendations"`
	Total           int                `json:"total"`
}

func TestListRecommendations_RankedDescending(t *testing.T) {
	t.Parallel()

	h := handlers.NewRecommendationsHandler(testCatalog(), rating.DefaultWeights())
	_, api := humatest.New(t)
	handlers.RegisterRecommendationRoutes(api, h)

	resp := api.Get("/api/v1/recommendations")
	require.Equal(t, http.StatusOK, resp.Code)

	var body recommendationsBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, 3, body.Total)

	for i := 1; i < len(body.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			body.Recommendations[i-1].Rating.OverallScore,
			body.Recommendations[i].Rating.OverallScore,
		)
	}
}

func TestListRecommendations_QueryFiltersPriceAndType(t *testing.T) {
	t.Parallel()

	h := handlers.NewRecommendationsHandler(testCatalog(), rating.DefaultWeights())
	_, api := humatest.New(t)
	handlers.RegisterRecommendationRoutes(api, h)

	resp := api.Get("/api/v1/recommendations?q=EV+under+%2425k")
	require.Equal(t, http.StatusOK, resp.Code)

	var body recommendationsBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "bolt-1", body.Recommendations[0].Listing.ID)
}

func TestListRecommendations_SortBySubScore(t *testing.T) {
	t.Parallel()

	h := handlers.NewRecommendationsHandler(testCatalog(), rating.DefaultWeights())
	_, api := humatest.New(t)
	handlers.RegisterRecommendationRoutes(api, h)

	resp := api.Get("/api/v1/recommendations?sort_by=efficiency")
	require.Equal(t, http.StatusOK, resp.Code)

	var body recommendationsBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, 3, body.Total)

	for i := 1; i < len(body.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			body.Recommendations[i-1].Rating.Breakdown.Efficiency,
			body.Recommendations[i].Rating.Breakdown.Efficiency,
		)
	}
}

func TestListRecommendations_EmptyResult(t *testing.T) {
	t.Parallel()

	h := handlers.NewRecommendationsHandler(testCatalog(), rating.DefaultWeights())
	_, api := humatest.New(t)
	handlers.RegisterRecommendationRoutes(api, h)

	resp := api.Get("/api/v1/recommendations?type=truck")
	require.Equal(t, http.StatusOK, resp.Code)

	var body recommendationsBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Zero(t, body.Total)
	assert.Empty(t, body.Recommendations)
}
