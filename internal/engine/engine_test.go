package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carexpo/car-expo/internal/catalog"
	domain "github.com/carexpo/car-expo/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSource returns canned batches or a canned error.
type fakeSource struct {
	batches [][]domain.Listing
	err     error
	calls   int
}

func (f *fakeSource) Fetch(context.Context) ([]domain.Listing, error) {
	if f.err != nil {
		return nil, f.err
	}
	batch := f.batches[f.calls%len(f.batches)]
	f.calls++
	return batch, nil
}

func sample(id string) domain.Listing {
	return domain.Listing{
		ID:    id,
		Make:  "Toyota",
		Model: "Camry",
		Year:  2022,
		Price: 24000,
		Image: "https://example.com/car.jpg",
		Type:  domain.TypeSedan,
	}
}

func TestRunRefresh_ReplacesCatalog(t *testing.T) {
	t.Parallel()

	cat := catalog.New([]domain.Listing{sample("old")})
	src := &fakeSource{batches: [][]domain.Listing{
		{sample("a"), sample("b")},
	}}

	eng := NewEngine(cat, src, WithLogger(quietLogger()))
	require.NoError(t, eng.RunRefresh(context.Background()))

	assert.Equal(t, 2, cat.Len())
	_, ok := cat.Get("old")
	assert.False(t, ok)
	_, ok = cat.Get("a")
	assert.True(t, ok)
}

func TestRunRefresh_SourceErrorKeepsCatalog(t *testing.T) {
	t.Parallel()

	cat := catalog.New([]domain.Listing{sample("keep")})
	src := &fakeSource{err: errors.New("scraper down")}

	eng := NewEngine(cat, src, WithLogger(quietLogger()))
	err := eng.RunRefresh(context.Background())
	require.Error(t, err)

	assert.Equal(t, 1, cat.Len())
	_, ok := cat.Get("keep")
	assert.True(t, ok)
}

func TestRunRefresh_EmptyBatchKeepsCatalog(t *testing.T) {
	t.Parallel()

	cat := catalog.New([]domain.Listing{sample("keep")})
	src := &fakeSource{batches: [][]domain.Listing{{}}}

	eng := NewEngine(cat, src, WithLogger(quietLogger()))
	require.NoError(t, eng.RunRefresh(context.Background()))

	assert.Equal(t, 1, cat.Len())
}

func TestRunRefresh_FiresAfterRefreshHook(t *testing.T) {
	t.Parallel()

	cat := catalog.New(nil)
	src := &fakeSource{batches: [][]domain.Listing{
		{sample("a")},
	}}

	var fired int
	eng := NewEngine(cat, src,
		WithLogger(quietLogger()),
		WithAfterRefresh(func() { fired++ }),
	)

	require.NoError(t, eng.RunRefresh(context.Background()))
	assert.Equal(t, 1, fired)

	// the hook sees the new contents, so it must not fire when the
	// catalog was left untouched
	src.batches = [][]domain.Listing{{}}
	require.NoError(t, eng.RunRefresh(context.Background()))
	assert.Equal(t, 1, fired)

	src.batches = nil
	src.err = errors.New("scraper down")
	require.Error(t, eng.RunRefresh(context.Background()))
	assert.Equal(t, 1, fired)
}

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	cat := catalog.New(nil)
	eng := NewEngine(cat, &fakeSource{batches: [][]domain.Listing{{}}}, WithLogger(quietLogger()))

	sched, err := NewScheduler(eng, 15*time.Minute, quietLogger())
	require.NoError(t, err)
	assert.Len(t, sched.Entries(), 1)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	cat := catalog.New(nil)
	eng := NewEngine(cat, &fakeSource{batches: [][]domain.Listing{{}}}, WithLogger(quietLogger()))

	sched, err := NewScheduler(eng, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start()
	stopCtx := sched.Stop()

	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop in time")
	}
}
