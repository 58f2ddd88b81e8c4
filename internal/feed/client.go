// Package feed fetches fresh listings from the scraper service, which
// exposes a single POST endpoint taking a make/model pair and returning
// scraped records.
package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/carexpo/car-expo/internal/catalog"
	"github.com/carexpo/car-expo/internal/metrics"
	domain "github.com/carexpo/car-expo/pkg/types"
)

const defaultTimeout = 60 * time.Second

// Client calls the scraper service. It satisfies catalog.Source so the
// engine can refresh the catalog from it directly.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *RateLimiter
	log     *slog.Logger

	// searches are the make/model pairs fetched per refresh.
	searches []Search
}

// Search is one make/model scrape request.
type Search struct {
	Make  string `json:"make"`
	Model string `json:"model"`
}

type scrapeResponse struct {
	Success  bool                    `json:"success"`
	CarCount int                     `json:"carCount"`
	Results  []catalog.ScrapedRecord `json:"results"`
	Error    string                  `json:"error,omitempty"`
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithSearches sets the make/model pairs fetched by each Fetch call.
func WithSearches(searches []Search) Option {
	return func(c *Client) {
		c.searches = searches
	}
}

// NewClient creates a scraper feed client.
func NewClient(baseURL string, limiter *RateLimiter, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: limiter,
		log:     log,
		searches: []Search{
			{Make: "toyota", Model: "camry"},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ catalog.Source = (*Client)(nil)

// Fetch scrapes every configured search and returns the combined
// listings. A search that fails is logged and skipped; Fetch only
// errors when every search failed.
func (c *Client) Fetch(ctx context.Context) ([]domain.Listing, error) {
	var (
		all    []domain.Listing
		lastEr error
	)

	for _, s := range c.searches {
		records, err := c.scrape(ctx, s)
		if err != nil {
			c.log.Warn("scrape failed",
				"make", s.Make,
				"model", s.Model,
				"error", err,
			)
			lastEr = err
			continue
		}
		all = append(all, catalog.ConvertBatch(records)...)
	}

	if len(all) == 0 && lastEr != nil {
		return nil, fmt.Errorf("all searches failed: %w", lastEr)
	}
	return all, nil
}

func (c *Client) scrape(ctx context.Context, s Search) ([]catalog.ScrapedRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		if errors.Is(err, ErrDailyLimitReached) {
			metrics.FeedDailyLimitHits.Inc()
		}
		return nil, err
	}
	metrics.FeedCallsTotal.Inc()
	metrics.FeedDailyUsage.Set(float64(c.limiter.DailyCount()))

	body, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling scraper: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scraper returned status %d", resp.StatusCode)
	}

	var parsed scrapeResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if !parsed.Success {
		return nil, fmt.Errorf("scraper error: %s", parsed.Error)
	}

	c.log.Debug("scrape complete",
		"make", s.Make,
		"model", s.Model,
		"count", parsed.CarCount,
		"quota_remaining", c.limiter.Remaining(),
	)
	return parsed.Results, nil
}
