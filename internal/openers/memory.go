// internal/openers/memory.go
//
// In-memory implementation of the Store interface.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package openers

import (
	"context"
	"sync"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex             // guards entries
	entries map[string][]solver.Word // keyed by universe hash
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{entries: make(map[string][]solver.Word)}
}

// Put stores a copy of ws under key.
func (m *memory) Put(ctx context.Context, key string, ws []solver.Word) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = append([]solver.Word(nil), ws...)
	return nil
}

// Get returns a copy of the words under key, or ErrNotFound.
func (m *memory) Get(ctx context.Context, key string) ([]solver.Word, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if ws, ok := m.entries[key]; ok {
		return append([]solver.Word(nil), ws...), nil
	}
	return nil, ErrNotFound
}
