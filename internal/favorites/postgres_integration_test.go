//go:build integration

package favorites

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *Postgres {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("carexpo_test"),
		postgres.WithUsername("carexpo"),
		postgres.WithPassword("carexpo"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(context.Background()))
	})

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := NewPostgres(ctx, connString)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Migrate(ctx))
	return store
}

func TestPostgres_EmptyByDefault(t *testing.T) {
	store := setupPostgres(t)
	ctx := context.Background()

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestPostgres_AddToggleRemove(t *testing.T) {
	store := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "car-1"))
	require.NoError(t, store.Add(ctx, "car-1"))
	require.NoError(t, store.Add(ctx, "car-2"))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"car-1", "car-2"}, ids)

	saved, err := store.Toggle(ctx, "car-1")
	require.NoError(t, err)
	assert.False(t, saved)

	saved, err = store.Toggle(ctx, "car-3")
	require.NoError(t, err)
	assert.True(t, saved)

	require.NoError(t, store.Remove(ctx, "car-2"))

	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"car-3"}, ids)
}

func TestPostgres_SaveReplacesSet(t *testing.T) {
	store := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "car-1"))
	require.NoError(t, store.Save(ctx, []string{"car-5"}))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"car-5"}, ids)
}

func TestPostgres_MigrateIsIdempotent(t *testing.T) {
	store := setupPostgres(t)
	require.NoError(t, store.Migrate(context.Background()))
}
