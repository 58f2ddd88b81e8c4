package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carexpo/car-expo/internal/api/handlers"
	"github.com/carexpo/car-expo/internal/favorites"
)

func TestFavorites_EmptyByDefault(t *testing.T) {
	t.Parallel()

	h := handlers.NewFavoritesHandler(favorites.NewMemory())
	_, api := humatest.New(t)
	handlers.RegisterFavoriteRoutes(api, h)

	resp := api.Get("/api/v1/favorites")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":0`)
}

func TestFavorites_AddListRemove(t *testing.T) {
	t.Parallel()

	h := handlers.NewFavoritesHandler(favorites.NewMemory())
	_, api := humatest.New(t)
	handlers.RegisterFavoriteRoutes(api, h)

	resp := api.Post("/api/v1/favorites/camry-1")
	require.Equal(t, http.StatusOK, resp.Code)
	resp = api.Post("/api/v1/favorites/rav4-1")
	require.Equal(t, http.StatusOK, resp.Code)

	// Adding twice keeps the set unchanged.
	resp = api.Post("/api/v1/favorites/camry-1")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":2`)

	resp = api.Delete("/api/v1/favorites/camry-1")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":1`)
	assert.Contains(t, resp.Body.String(), "rav4-1")
}

func TestFavorites_Toggle(t *testing.T) {
	t.Parallel()

	h := handlers.NewFavoritesHandler(favorites.NewMemory())
	_, api := humatest.New(t)
	handlers.RegisterFavoriteRoutes(api, h)

	resp := api.Post("/api/v1/favorites/bolt-1/toggle")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"saved":true`)

	resp = api.Post("/api/v1/favorites/bolt-1/toggle")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"saved":false`)
}

func TestFavorites_Replace(t *testing.T) {
	t.Parallel()

	h := handlers.NewFavoritesHandler(favorites.NewMemory())
	_, api := humatest.New(t)
	handlers.RegisterFavoriteRoutes(api, h)

	resp := api.Post("/api/v1/favorites/old-1")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = api.Put("/api/v1/favorites", map[string]any{
		"favorites": []string{"new-1", "new-2"},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":2`)
	assert.NotContains(t, resp.Body.String(), "old-1")
}
