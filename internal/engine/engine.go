// Package engine orchestrates catalog refreshes: it pulls listings from
// the configured source and swaps them into the in-memory catalog.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/carexpo/car-expo/internal/catalog"
	"github.com/carexpo/car-expo/internal/metrics"
	"github.com/carexpo/car-expo/pkg/rating"
)

// Engine refreshes the catalog from a listing source.
type Engine struct {
	catalog      *catalog.Catalog
	source       catalog.Source
	log          *slog.Logger
	nowFunc      func() time.Time
	afterRefresh func()
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithNowFunc overrides the clock, for tests.
func WithNowFunc(f func() time.Time) Option {
	return func(e *Engine) {
		e.nowFunc = f
	}
}

// WithAfterRefresh registers fn to run after every refresh that replaced
// the catalog contents. Failed and empty refreshes do not fire it.
func WithAfterRefresh(fn func()) Option {
	return func(e *Engine) {
		e.afterRefresh = fn
	}
}

// NewEngine creates an engine that refreshes cat from src.
func NewEngine(cat *catalog.Catalog, src catalog.Source, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		source:  src,
		log:     slog.Default(),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunRefresh fetches a fresh batch of listings and replaces the catalog
// contents. An empty batch leaves the current catalog in place so a
// flaky source cannot wipe the inventory.
func (e *Engine) RunRefresh(ctx context.Context) error {
	start := e.nowFunc()
	e.log.Info("catalog refresh starting")

	listings, err := e.source.Fetch(ctx)
	if err != nil {
		metrics.RefreshErrorsTotal.Inc()
		return fmt.Errorf("fetching listings: %w", err)
	}
	if len(listings) == 0 {
		e.log.Warn("refresh returned no listings, keeping current catalog",
			"current_size", e.catalog.Len(),
		)
		return nil
	}

	e.catalog.Replace(listings)

	now := e.nowFunc()
	for _, l := range e.catalog.All() {
		r := rating.Calculate(&l, now)
		metrics.RatingDistribution.Observe(float64(r.OverallScore))
	}

	if e.afterRefresh != nil {
		e.afterRefresh()
	}

	metrics.RefreshListingsTotal.Add(float64(len(listings)))
	metrics.CatalogSize.Set(float64(e.catalog.Len()))
	metrics.RefreshDuration.Observe(now.Sub(start).Seconds())

	e.log.Info("catalog refresh complete",
		"listings", len(listings),
		"catalog_size", e.catalog.Len(),
		"duration", now.Sub(start),
	)
	return nil
}
