package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carexpo/car-expo/internal/metrics"
	"github.com/carexpo/car-expo/internal/query"
	"github.com/carexpo/car-expo/pkg/extract"
	domain "github.com/carexpo/car-expo/pkg/types"
)

// ParseQueryHandler turns free-text searches into structured filters.
// The deterministic parser always answers; the LLM extraction enriches
// the result when a backend is configured and responsive.
type ParseQueryHandler struct {
	extractor extract.Extractor
	log       *slog.Logger
}

// NewParseQueryHandler creates a new ParseQueryHandler.
func NewParseQueryHandler(ex extract.Extractor, log *slog.Logger) *ParseQueryHandler {
	return &ParseQueryHandler{extractor: ex, log: log}
}

// ParseQueryInput is the input for the parse-query endpoint.
type ParseQueryInput struct {
	Body struct {
		Query string `json:"query" minLength:"1" doc:"Free-text car search query"`
	}
}

// ParseQueryOutput is the response for the parse-query endpoint.
type ParseQueryOutput struct {
	Body struct {
		OriginalQuery string             `json:"original_query"`
		Parsed        domain.ParsedQuery `json:"parsed"`
		Intent        domain.QueryIntent `json:"intent"`
		Degraded      bool               `json:"degraded" doc:"True when LLM extraction failed and only deterministic parsing applied"`
	}
}

// ParseQuery parses a search query. LLM failure degrades the response
// instead of failing it: the deterministic result is always returned.
func (h *ParseQueryHandler) ParseQuery(
	ctx context.Context,
	input *ParseQueryInput,
) (*ParseQueryOutput, error) {
	resp := &ParseQueryOutput{}
	resp.Body.OriginalQuery = input.Body.Query
	resp.Body.Parsed = query.Parse(input.Body.Query)

	start := time.Now()
	intent, err := h.extractor.ExtractQuery(ctx, input.Body.Query)
	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExtractionFailuresTotal.Inc()
		h.log.Warn("query extraction degraded",
			"query", input.Body.Query,
			"error", err,
		)
		resp.Body.Degraded = true
		return resp, nil
	}
	resp.Body.Intent = intent

	return resp, nil
}

// RegisterParseQueryRoutes registers query parsing endpoints with the Huma API.
func RegisterParseQueryRoutes(api huma.API, h *ParseQueryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "parse-query",
		Method:      http.MethodPost,
		Path:        "/api/v1/parse-query",
		Summary:     "Parse a search query",
		Description: "Extracts structured car filters from a free-text query, best effort via LLM with deterministic fallback.",
		Tags:        []string{"search"},
	}, h.ParseQuery)
}
