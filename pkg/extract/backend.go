// Package extract provides LLM-based parsing of free-text car search
// queries, abstracted behind interfaces for testability.
package extract

import (
	"context"

	domain "github.com/carexpo/car-expo/pkg/types"
)

// FormatJSON is the format string for requesting JSON mode from LLM backends.
const FormatJSON = "json"

// GenerateRequest defines the input for an LLM generation call.
type GenerateRequest struct {
	Prompt      string
	SystemMsg   string
	Format      string // FormatJSON for JSON mode
	Temperature float64
	MaxTokens   int
}

// TokenUsage tracks LLM token consumption.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
}

// LLMBackend defines the interface for LLM text generation.
type LLMBackend interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}

// Extractor turns a free-text search query into structured car intent.
// Implementations are best effort: callers must treat failure as "no
// extra filters", never as a fatal error.
type Extractor interface {
	ExtractQuery(ctx context.Context, query string) (domain.QueryIntent, error)
}
