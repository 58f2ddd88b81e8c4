package client

import (
	"context"
	"fmt"
	"net/url"
)

// FavoritesResponse wraps the saved-car set response.
type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
	Total     int      `json:"total"`
}

// ToggleResponse reports one car's saved state after a toggle.
type ToggleResponse struct {
	ID    string `json:"id"`
	Saved bool   `json:"saved"`
}

// ListFavorites returns the saved car IDs in insertion order.
func (c *Client) ListFavorites(ctx context.Context) (*FavoritesResponse, error) {
	var resp FavoritesResponse
	if err := c.get(ctx, "/api/v1/favorites", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SaveFavorites replaces the whole saved set.
func (c *Client) SaveFavorites(ctx context.Context, ids []string) (*FavoritesResponse, error) {
	body := map[string][]string{"favorites": ids}

	var resp FavoritesResponse
	if err := c.put(ctx, "/api/v1/favorites", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddFavorite saves one car. Idempotent.
func (c *Client) AddFavorite(ctx context.Context, id string) (*FavoritesResponse, error) {
	var resp FavoritesResponse
	if err := c.post(ctx, favoritePath(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemoveFavorite unsaves one car. Idempotent.
func (c *Client) RemoveFavorite(ctx context.Context, id string) (*FavoritesResponse, error) {
	var resp FavoritesResponse
	if err := c.del(ctx, favoritePath(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ToggleFavorite flips one car's saved state.
func (c *Client) ToggleFavorite(ctx context.Context, id string) (*ToggleResponse, error) {
	var resp ToggleResponse
	if err := c.post(ctx, favoritePath(id)+"/toggle", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func favoritePath(id string) string {
	return fmt.Sprintf("/api/v1/favorites/%s", url.PathEscape(id))
}
