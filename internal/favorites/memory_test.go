package favorites

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_EmptyByDefault(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ids, err := m.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMemory_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Add(ctx, "car-1"))
	require.NoError(t, m.Add(ctx, "car-1"))
	require.NoError(t, m.Add(ctx, "car-2"))

	ids, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"car-1", "car-2"}, ids)
}

func TestMemory_Toggle(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	saved, err := m.Toggle(ctx, "car-1")
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = m.Toggle(ctx, "car-1")
	require.NoError(t, err)
	assert.False(t, saved)

	ids, err := m.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMemory_RemoveAbsentIsNoop(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Add(ctx, "car-1"))
	require.NoError(t, m.Remove(ctx, "car-9"))

	ids, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"car-1"}, ids)
}

func TestMemory_SaveReplacesSet(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Add(ctx, "car-1"))
	require.NoError(t, m.Save(ctx, []string{"car-7", "car-8"}))

	ids, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"car-7", "car-8"}, ids)
}

func TestMemory_ListReturnsCopy(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Add(ctx, "car-1"))

	ids, err := m.List(ctx)
	require.NoError(t, err)
	ids[0] = "mutated"

	again, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"car-1"}, again)
}

func TestMemory_ConcurrentToggles(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Toggle(ctx, "car-1")
			_ = m.Add(ctx, "car-2")
		}()
	}
	wg.Wait()

	ids, err := m.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "car-2")
}
