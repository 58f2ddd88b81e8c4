// Package deck holds the card-by-card browsing session: a cursor over a
// slice of listings plus the swipe actions that advance it.
package deck

import (
	"context"
	"fmt"
	"sync"

	"github.com/carexpo/car-expo/internal/favorites"
	domain "github.com/carexpo/car-expo/pkg/types"
)

// State describes where a session is in its deck.
type State string

const (
	// StateEmpty means the deck has no listings at all.
	StateEmpty State = "empty"
	// StateBrowsing means the cursor points at a card.
	StateBrowsing State = "browsing"
	// StateComplete means every card has been swiped.
	StateComplete State = "complete"
)

// Session is a single user's pass through a deck of listings. Swiping
// right saves the current card before advancing; swiping left just
// advances. It is safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	listings []domain.Listing
	index    int
	saved    favorites.Store
}

// NewSession starts a session over listings, persisting saves to store.
func NewSession(listings []domain.Listing, store favorites.Store) *Session {
	s := &Session{saved: store}
	s.Reset(listings)
	return s
}

// Reset replaces the deck and rewinds the cursor to the first card.
// Saved favorites are untouched.
func (s *Session) Reset(listings []domain.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings = make([]domain.Listing, len(listings))
	copy(s.listings, listings)
	s.index = 0
}

// State reports the session's current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	switch {
	case len(s.listings) == 0:
		return StateEmpty
	case s.index >= len(s.listings):
		return StateComplete
	default:
		return StateBrowsing
	}
}

// Current returns the card under the cursor. The second return is false
// when the session is empty or complete.
func (s *Session) Current() (domain.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stateLocked() != StateBrowsing {
		return domain.Listing{}, false
	}
	return s.listings[s.index], true
}

// Position reports the zero-based cursor index and the deck size.
func (s *Session) Position() (index, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index, len(s.listings)
}

// SwipeLeft passes on the current card and advances the cursor.
func (s *Session) SwipeLeft() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advanceLocked()
}

// SwipeRight saves the current card and advances the cursor. If the save
// fails the cursor does not move, so the swipe can be retried.
func (s *Session) SwipeRight(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stateLocked() != StateBrowsing {
		return fmt.Errorf("no card to swipe: session is %s", s.stateLocked())
	}
	if err := s.saved.Add(ctx, s.listings[s.index].ID); err != nil {
		return fmt.Errorf("saving listing %s: %w", s.listings[s.index].ID, err)
	}
	s.index++
	return nil
}

func (s *Session) advanceLocked() error {
	if s.stateLocked() != StateBrowsing {
		return fmt.Errorf("no card to swipe: session is %s", s.stateLocked())
	}
	s.index++
	return nil
}

// Rewind steps the cursor back one card. At the first card it is a no-op.
// A previously saved card stays saved; rewinding undoes the advance, not
// the save.
func (s *Session) Rewind() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index > 0 {
		s.index--
	}
}

// Restart rewinds the cursor to the first card, keeping saved favorites.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = 0
}

// ToggleSave flips the saved state of an arbitrary listing without
// moving the cursor, and reports whether it is saved afterwards.
func (s *Session) ToggleSave(ctx context.Context, id string) (bool, error) {
	saved, err := s.saved.Toggle(ctx, id)
	if err != nil {
		return false, fmt.Errorf("toggling listing %s: %w", id, err)
	}
	return saved, nil
}

// Saved returns the persisted favorite IDs.
func (s *Session) Saved(ctx context.Context) ([]string, error) {
	return s.saved.List(ctx)
}
