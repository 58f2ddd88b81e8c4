package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carexpo/car-expo/internal/favorites"
)

// FavoritesHandler handles the saved-car set.
type FavoritesHandler struct {
	store favorites.Store
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(s favorites.Store) *FavoritesHandler {
	return &FavoritesHandler{store: s}
}

// --- Input/Output types ---

// ListFavoritesOutput is the response for listing saved car IDs.
type ListFavoritesOutput struct {
	Body struct {
		Favorites []string `json:"favorites"`
		Total     int      `json:"total"`
	}
}

// SaveFavoritesInput replaces the whole saved set.
type SaveFavoritesInput struct {
	Body struct {
		Favorites []string `json:"favorites"`
	}
}

// FavoriteIDInput addresses one saved car.
type FavoriteIDInput struct {
	ID string `path:"id" doc:"Listing ID"`
}

// ToggleFavoriteOutput reports the saved state after a toggle.
type ToggleFavoriteOutput struct {
	Body struct {
		ID    string `json:"id"`
		Saved bool   `json:"saved"`
	}
}

// --- Handlers ---

// ListFavorites returns the saved car IDs in insertion order.
func (h *FavoritesHandler) ListFavorites(
	ctx context.Context,
	_ *struct{},
) (*ListFavoritesOutput, error) {
	ids, err := h.store.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing favorites failed: " + err.Error())
	}

	resp := &ListFavoritesOutput{}
	resp.Body.Favorites = ids
	resp.Body.Total = len(ids)
	return resp, nil
}

// SaveFavorites replaces the saved set.
func (h *FavoritesHandler) SaveFavorites(
	ctx context.Context,
	input *SaveFavoritesInput,
) (*ListFavoritesOutput, error) {
	if err := h.store.Save(ctx, input.Body.Favorites); err != nil {
		return nil, huma.Error500InternalServerError("saving favorites failed: " + err.Error())
	}
	return h.ListFavorites(ctx, nil)
}

// AddFavorite saves one car. Adding an already-saved car is a no-op.
func (h *FavoritesHandler) AddFavorite(
	ctx context.Context,
	input *FavoriteIDInput,
) (*ListFavoritesOutput, error) {
	if err := h.store.Add(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("adding favorite failed: " + err.Error())
	}
	return h.ListFavorites(ctx, nil)
}

// RemoveFavorite unsaves one car. Removing an absent car is a no-op.
func (h *FavoritesHandler) RemoveFavorite(
	ctx context.Context,
	input *FavoriteIDInput,
) (*ListFavoritesOutput, error) {
	if err := h.store.Remove(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("removing favorite failed: " + err.Error())
	}
	return h.ListFavorites(ctx, nil)
}

// ToggleFavorite flips one car's saved state.
func (h *FavoritesHandler) ToggleFavorite(
	ctx context.Context,
	input *FavoriteIDInput,
) (*ToggleFavoriteOutput, error) {
	saved, err := h.store.Toggle(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("toggling favorite failed: " + err.Error())
	}

	resp := &ToggleFavoriteOutput{}
	resp.Body.ID = input.ID
	resp.Body.Saved = saved
	return resp, nil
}

// RegisterFavoriteRoutes registers favorites endpoints with the Huma API.
func RegisterFavoriteRoutes(api huma.API, h *FavoritesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-favorites",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites",
		Summary:     "List favorites",
		Description: "Returns the saved car IDs in insertion order.",
		Tags:        []string{"favorites"},
	}, h.ListFavorites)

	huma.Register(api, huma.Operation{
		OperationID: "save-favorites",
		Method:      http.MethodPut,
		Path:        "/api/v1/favorites",
		Summary:     "Replace favorites",
		Description: "Replaces the whole saved set.",
		Tags:        []string{"favorites"},
	}, h.SaveFavorites)

	huma.Register(api, huma.Operation{
		OperationID: "add-favorite",
		Method:      http.MethodPost,
		Path:        "/api/v1/favorites/{id}",
		Summary:     "Add a favorite",
		Description: "Saves one car. Idempotent.",
		Tags:        []string{"favorites"},
	}, h.AddFavorite)

	huma.Register(api, huma.Operation{
		OperationID: "remove-favorite",
		Method:      http.MethodDelete,
		Path:        "/api/v1/favorites/{id}",
		Summary:     "Remove a favorite",
		Description: "Unsaves one car. Idempotent.",
		Tags:        []string{"favorites"},
	}, h.RemoveFavorite)

	huma.Register(api, huma.Operation{
		OperationID: "toggle-favorite",
		Method:      http.MethodPost,
		Path:        "/api/v1/favorites/{id}/toggle",
		Summary:     "Toggle a favorite",
		Description: "Flips one car's saved state and reports the result.",
		Tags:        []string{"favorites"},
	}, h.ToggleFavorite)
}
