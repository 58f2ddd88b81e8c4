package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carexpo/car-expo/internal/catalog"
	"github.com/carexpo/car-expo/internal/deck"
	"github.com/carexpo/car-expo/internal/query"
	"github.com/carexpo/car-expo/internal/recommend"
	"github.com/carexpo/car-expo/pkg/rating"
	domain "github.com/carexpo/car-expo/pkg/types"
)

// DeckHandler exposes the card-by-card browsing session. The deck is
// always the filtered, score-ranked view of the catalog: Reset re-runs
// the ranking pipeline with new filters, and Reseed re-runs it with the
// current ones after a catalog refresh.
type DeckHandler struct {
	session *deck.Session
	catalog *catalog.Catalog
	weights rating.Weights

	mu   sync.Mutex
	opts deckOptions
}

// deckOptions are the last configured deck filters, kept so a catalog
// refresh reseeds the same view the user set up.
type deckOptions struct {
	Type   string
	Q      string
	SortBy string
}

// NewDeckHandler creates a new DeckHandler over the given session and
// catalog. The session starts from whatever it was seeded with; call
// Reseed to rank the catalog into it.
func NewDeckHandler(s *deck.Session, cat *catalog.Catalog, weights rating.Weights) *DeckHandler {
	return &DeckHandler{session: s, catalog: cat, weights: weights}
}

// DeckState describes the session for clients.
type DeckState struct {
	State   deck.State      `json:"state" enum:"empty,browsing,complete"`
	Index   int             `json:"index"`
	Total   int             `json:"total"`
	Current *domain.Listing `json:"current,omitempty"`
}

// GetDeckOutput is the response for deck state endpoints.
type GetDeckOutput struct {
	Body DeckState
}

// SwipeInput is the input for swiping the current card.
type SwipeInput struct {
	Body struct {
		Direction string `json:"direction" enum:"left,right" doc:"left passes, right saves"`
	}
}

// ResetDeckInput reconfigures the deck's filters and sort order.
type ResetDeckInput struct {
	Body struct {
		Type   string `json:"type,omitempty"    doc:"Explicit vehicle type filter"                 enum:"all,sedan,suv,truck,ev,coupe,convertible,hatchback,wagon,"`
		Q      string `json:"q,omitempty"       doc:"Free-text search, parsed for type and price"`
		SortBy string `json:"sort_by,omitempty" doc:"Ranking score"                                enum:"overall,value,reliability,features,condition,performance,efficiency,style,"`
	}
}

func (h *DeckHandler) state() DeckState {
	index, total := h.session.Position()
	st := DeckState{
		State: h.session.State(),
		Index: index,
		Total: total,
	}
	if cur, ok := h.session.Current(); ok {
		st.Current = &cur
	}
	return st
}

// GetDeck returns the current session state and card.
func (h *DeckHandler) GetDeck(
	_ context.Context,
	_ *struct{},
) (*GetDeckOutput, error) {
	return &GetDeckOutput{Body: h.state()}, nil
}

// Swipe advances past the current card, saving it on a right swipe.
func (h *DeckHandler) Swipe(
	ctx context.Context,
	input *SwipeInput,
) (*GetDeckOutput, error) {
	var err error
	switch input.Body.Direction {
	case "right":
		err = h.session.SwipeRight(ctx)
	case "left":
		err = h.session.SwipeLeft()
	default:
		return nil, huma.Error422UnprocessableEntity("direction must be left or right")
	}
	if err != nil {
		return nil, huma.Error409Conflict(err.Error())
	}
	return &GetDeckOutput{Body: h.state()}, nil
}

// Rewind steps back to the previous card.
func (h *DeckHandler) Rewind(
	_ context.Context,
	_ *struct{},
) (*GetDeckOutput, error) {
	h.session.Rewind()
	return &GetDeckOutput{Body: h.state()}, nil
}

// Restart rewinds to the first card, keeping saved favorites.
func (h *DeckHandler) Restart(
	_ context.Context,
	_ *struct{},
) (*GetDeckOutput, error) {
	h.session.Restart()
	return &GetDeckOutput{Body: h.state()}, nil
}

// ResetDeck applies new filters, re-ranks the catalog into the deck, and
// rewinds to the first card. Saved favorites are kept.
func (h *DeckHandler) ResetDeck(
	_ context.Context,
	input *ResetDeckInput,
) (*GetDeckOutput, error) {
	h.mu.Lock()
	h.opts = deckOptions{
		Type:   input.Body.Type,
		Q:      input.Body.Q,
		SortBy: input.Body.SortBy,
	}
	h.reseedLocked()
	h.mu.Unlock()

	return &GetDeckOutput{Body: h.state()}, nil
}

// Reseed re-ranks the current catalog into the deck with the last
// configured filters. Wired to the refresh engine so the deck never
// keeps serving listings that left the inventory.
func (h *DeckHandler) Reseed() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reseedLocked()
}

func (h *DeckHandler) reseedLocked() {
	scored := recommend.Select(h.catalog.All(), recommend.Options{
		Filter:  h.opts.Type,
		Query:   query.Parse(h.opts.Q),
		SortBy:  h.opts.SortBy,
		Weights: &h.weights,
	}, time.Now())
	h.session.Reset(recommend.Listings(scored))
}

// RegisterDeckRoutes registers browsing session endpoints with the Huma API.
func RegisterDeckRoutes(api huma.API, h *DeckHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-deck",
		Method:      http.MethodGet,
		Path:        "/api/v1/deck",
		Summary:     "Get deck state",
		Description: "Returns the browsing session state and the current card.",
		Tags:        []string{"deck"},
	}, h.GetDeck)

	huma.Register(api, huma.Operation{
		OperationID: "swipe-deck",
		Method:      http.MethodPost,
		Path:        "/api/v1/deck/swipe",
		Summary:     "Swipe the current card",
		Description: "Left passes on the card, right saves it to favorites; both advance.",
		Tags:        []string{"deck"},
		Errors:      []int{http.StatusConflict},
	}, h.Swipe)

	huma.Register(api, huma.Operation{
		OperationID: "rewind-deck",
		Method:      http.MethodPost,
		Path:        "/api/v1/deck/rewind",
		Summary:     "Rewind one card",
		Description: "Steps back to the previous card. No-op at the first card.",
		Tags:        []string{"deck"},
	}, h.Rewind)

	huma.Register(api, huma.Operation{
		OperationID: "restart-deck",
		Method:      http.MethodPost,
		Path:        "/api/v1/deck/restart",
		Summary:     "Restart the deck",
		Description: "Rewinds to the first card. Saved favorites are kept.",
		Tags:        []string{"deck"},
	}, h.Restart)

	huma.Register(api, huma.Operation{
		OperationID: "reset-deck",
		Method:      http.MethodPost,
		Path:        "/api/v1/deck/reset",
		Summary:     "Reconfigure the deck",
		Description: "Applies new filters, re-ranks the catalog into the deck, and rewinds to the first card.",
		Tags:        []string{"deck"},
	}, h.ResetDeck)
}
