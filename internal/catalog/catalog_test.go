package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/carexpo/car-expo/pkg/types"
)

func TestCatalog_ReplaceAndGet(t *testing.T) {
	t.Parallel()

	c := New(nil)
	assert.Equal(t, 0, c.Len())

	c.Replace([]domain.Listing{
		{ID: "a", Make: "Toyota"},
		{ID: "b", Make: "Honda"},
	})
	assert.Equal(t, 2, c.Len())

	got, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, "Honda", got.Make)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCatalog_ReplaceDropsDuplicateIDs(t *testing.T) {
	t.Parallel()

	c := New([]domain.Listing{
		{ID: "a", Make: "Toyota"},
		{ID: "a", Make: "Honda"},
		{ID: "b", Make: "Ford"},
	})

	assert.Equal(t, 2, c.Len())
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Toyota", got.Make)
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	t.Parallel()

	c := New([]domain.Listing{{ID: "a", Make: "Toyota"}})

	all := c.All()
	all[0].Make = "mutated"

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Toyota", got.Make)
}

func TestStatic_FetchServesFixtures(t *testing.T) {
	t.Parallel()

	listings, err := Static{}.Fetch(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, listings)

	seen := make(map[string]bool, len(listings))
	for _, l := range listings {
		assert.NotEmpty(t, l.ID)
		assert.NotEmpty(t, l.Make)
		assert.NotEmpty(t, l.Model)
		assert.Positive(t, l.Year)
		assert.Positive(t, l.Price)
		assert.NotEmpty(t, l.Image)
		assert.False(t, seen[l.ID], "duplicate fixture id %s", l.ID)
		seen[l.ID] = true
	}
}
