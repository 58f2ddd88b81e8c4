package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	domain "github.com/carexpo/car-expo/pkg/types"
)

const defaultCallTimeout = 10 * time.Second

// LLMQueryExtractor implements Extractor using an LLM backend.
type LLMQueryExtractor struct {
	backend     LLMBackend
	temperature float64
	maxTokens   int
	timeout     time.Duration
}

// LLMQueryExtractorOption configures the LLMQueryExtractor.
type LLMQueryExtractorOption func(*LLMQueryExtractor)

// WithTemperature sets the LLM temperature for extraction.
func WithTemperature(t float64) LLMQueryExtractorOption {
	return func(e *LLMQueryExtractor) {
		e.temperature = t
	}
}

// WithMaxTokens sets the max tokens for LLM responses.
func WithMaxTokens(n int) LLMQueryExtractorOption {
	return func(e *LLMQueryExtractor) {
		e.maxTokens = n
	}
}

// WithCallTimeout caps the time spent waiting on the backend.
func WithCallTimeout(d time.Duration) LLMQueryExtractorOption {
	return func(e *LLMQueryExtractor) {
		e.timeout = d
	}
}

// NewLLMQueryExtractor creates a new LLMQueryExtractor.
func NewLLMQueryExtractor(backend LLMBackend, opts ...LLMQueryExtractorOption) *LLMQueryExtractor {
	e := &LLMQueryExtractor{
		backend:     backend,
		temperature: 0.1,
		maxTokens:   200,
		timeout:     defaultCallTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractQuery parses a free-text search query into structured intent.
// The call is bounded by the configured timeout regardless of the
// caller's context.
func (e *LLMQueryExtractor) ExtractQuery(
	ctx context.Context,
	query string,
) (domain.QueryIntent, error) {
	if strings.TrimSpace(query) == "" {
		return domain.QueryIntent{}, nil
	}

	prompt, err := RenderQueryPrompt(query)
	if err != nil {
		return domain.QueryIntent{}, fmt.Errorf("rendering query prompt: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.backend.Generate(ctx, GenerateRequest{
		Prompt:      prompt,
		SystemMsg:   querySystemMsg,
		Format:      FormatJSON,
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
	})
	if err != nil {
		return domain.QueryIntent{}, fmt.Errorf("calling LLM for query extraction: %w", err)
	}

	var intent domain.QueryIntent
	if err := json.Unmarshal([]byte(resp.Content), &intent); err != nil {
		return domain.QueryIntent{}, fmt.Errorf("parsing LLM JSON response: %w", err)
	}

	return intent, nil
}

var _ Extractor = (*LLMQueryExtractor)(nil)

// NoopExtractor always reports no structured intent. It stands in when
// no LLM backend is configured.
type NoopExtractor struct{}

// ExtractQuery returns an empty intent without error.
func (NoopExtractor) ExtractQuery(context.Context, string) (domain.QueryIntent, error) {
	return domain.QueryIntent{}, nil
}

var _ Extractor = NoopExtractor{}
