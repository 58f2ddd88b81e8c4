package favorites

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It is safe for concurrent use and is the
// default when no database is configured.
type Memory struct {
	mu  sync.Mutex
	ids []string
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) List(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.ids))
	copy(out, m.ids)
	return out, nil
}

func (m *Memory) Save(_ context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ids = make([]string, len(ids))
	copy(m.ids, ids)
	return nil
}

func (m *Memory) Add(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !contains(m.ids, id) {
		m.ids = append(m.ids, id)
	}
	return nil
}

func (m *Memory) Toggle(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if contains(m.ids, id) {
		m.ids = without(m.ids, id)
		return false, nil
	}
	m.ids = append(m.ids, id)
	return true, nil
}

func (m *Memory) Remove(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ids = without(m.ids, id)
	return nil
}

func (m *Memory) Close() error { return nil }
