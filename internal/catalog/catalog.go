// Package catalog holds the in-memory set of listings the service works
// from, plus the sources that populate it.
package catalog

import (
	"context"
	"sync"

	domain "github.com/carexpo/car-expo/pkg/types"
)

// Source produces a batch of listings. Implementations include the
// built-in fixture set and the live scraper feed.
type Source interface {
	Fetch(ctx context.Context) ([]domain.Listing, error)
}

// Catalog is the current listing inventory. Reads vastly outnumber
// writes: refreshes swap the whole slice under a write lock.
type Catalog struct {
	mu       sync.RWMutex
	listings []domain.Listing
	byID     map[string]int
}

// New returns a catalog seeded with the given listings.
func New(listings []domain.Listing) *Catalog {
	c := &Catalog{}
	c.Replace(listings)
	return c
}

// Replace swaps the inventory for a new batch. Listings with duplicate
// IDs keep the first occurrence.
func (c *Catalog) Replace(listings []domain.Listing) {
	next := make([]domain.Listing, 0, len(listings))
	byID := make(map[string]int, len(listings))
	for _, l := range listings {
		if _, seen := byID[l.ID]; seen {
			continue
		}
		byID[l.ID] = len(next)
		next = append(next, l)
	}

	c.mu.Lock()
	c.listings = next
	c.byID = byID
	c.mu.Unlock()
}

// All returns a copy of the inventory in insertion order.
func (c *Catalog) All() []domain.Listing {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Listing, len(c.listings))
	copy(out, c.listings)
	return out
}

// Get looks up a listing by ID.
func (c *Catalog) Get(id string) (domain.Listing, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return domain.Listing{}, false
	}
	return c.listings[i], true
}

// Len reports the inventory size.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.listings)
}
