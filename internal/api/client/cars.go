package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/carexpo/car-expo/internal/recommend"
	domain "github.com/carexpo/car-expo/pkg/types"
)

// CarsResponse wraps the car inventory response.
type CarsResponse struct {
	Cars  []domain.Listing `json:"cars"`
	Total int              `json:"total"`
}

// CarDetail is a listing together with its derived assessment.
type CarDetail struct {
	Car         domain.Listing `json:"car"`
	Rating      domain.Rating  `json:"rating"`
	Grade       domain.Grade   `json:"grade"`
	MarketValue float64        `json:"market_value"`
}

// RecommendationsResponse wraps the scored, ranked recommendations response.
type RecommendationsResponse struct {
	Recommendations []recommend.Scored `json:"recommendations"`
	Total           int                `json:"total"`
}

// ParseQueryResponse is the structured result of parsing a search query.
type ParseQueryResponse struct {
	OriginalQuery string             `json:"original_query"`
	Parsed        domain.ParsedQuery `json:"parsed"`
	Intent        domain.QueryIntent `json:"intent"`
	Degraded      bool               `json:"degraded"`
}

// RecommendationsParams defines query parameters for recommendations.
type RecommendationsParams struct {
	Type   string
	Query  string
	SortBy string
}

// ListCars returns the inventory, optionally filtered by vehicle type.
func (c *Client) ListCars(ctx context.Context, vehicleType string) (*CarsResponse, error) {
	path := "/api/v1/cars"
	if vehicleType != "" {
		path += "?type=" + url.QueryEscape(vehicleType)
	}

	var resp CarsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCar returns a single car with its rating, grade, and market value.
func (c *Client) GetCar(ctx context.Context, id string) (*CarDetail, error) {
	var detail CarDetail
	if err := c.get(ctx, fmt.Sprintf("/api/v1/cars/%s", url.PathEscape(id)), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListRecommendations returns the inventory scored and ranked.
func (c *Client) ListRecommendations(
	ctx context.Context,
	params *RecommendationsParams,
) (*RecommendationsResponse, error) {
	q := url.Values{}
	if params.Type != "" {
		q.Set("type", params.Type)
	}
	if params.Query != "" {
		q.Set("q", params.Query)
	}
	if params.SortBy != "" {
		q.Set("sort_by", params.SortBy)
	}

	path := "/api/v1/recommendations"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp RecommendationsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseQuery extracts structured filters from a free-text query.
func (c *Client) ParseQuery(ctx context.Context, text string) (*ParseQueryResponse, error) {
	body := map[string]string{"query": text}

	var resp ParseQueryResponse
	if err := c.post(ctx, "/api/v1/parse-query", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
