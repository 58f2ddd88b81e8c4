// Package favorites persists the set of saved listing IDs under a single
// well-known key, mirroring a browser localStorage entry.
package favorites

import "context"

// Key is the storage key holding the saved-ID set.
const Key = "favorites"

// Store persists saved listing IDs. Implementations must treat the set
// operations as idempotent: adding a present ID or removing an absent one
// succeeds without changing the set.
type Store interface {
	// List returns the saved IDs in insertion order. A missing key reads
	// as an empty set.
	List(ctx context.Context) ([]string, error)
	// Save replaces the whole set.
	Save(ctx context.Context, ids []string) error
	// Add inserts id if absent.
	Add(ctx context.Context, id string) error
	// Toggle adds id if absent, removes it if present, and reports
	// whether the id is saved afterwards.
	Toggle(ctx context.Context, id string) (bool, error)
	// Remove deletes id if present.
	Remove(ctx context.Context, id string) error
	// Close releases any underlying resources.
	Close() error
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
