// internal/store/memory.go
//
// In-memory session store for server mode.
//
// Characteristics:
//   - Stores game sessions keyed by ID in a map.
//   - The map is guarded by an RWMutex; each game has its own mutex so
//     guesses on one game never wait for another.
//   - Games created before a cutoff are dropped by Expire; the server
//     calls it with its token TTL, since an expired token can no longer
//     reach the game.
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/termwordle/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("game not found")

// Game is a stored session with its metadata.
type Game struct {
	ID        string
	Mode      string
	CreatedAt time.Time
	Session   *game.Session
}

// Store defines the session storage used by the HTTP layer.
type Store interface {
	// Put adds a new game. An existing ID is replaced.
	Put(ctx context.Context, g *Game) error

	// Update runs fn with exclusive access to the game's session.
	// Returns ErrNotFound if the game does not exist, else fn's error.
	Update(ctx context.Context, id string, fn func(g *Game) error) error

	// Expire drops every game created before cutoff and reports how
	// many were removed.
	Expire(ctx context.Context, cutoff time.Time) (int, error)

	// Len reports how many games are held.
	Len() int
}

type entry struct {
	mu sync.Mutex // serializes access to g.Session
	g  *Game
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards games map
	games map[string]*entry // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*entry)}
}

func (m *memory) Put(ctx context.Context, g *Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = &entry{g: g}
	return nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(g *Game) error) error {
	m.mu.RLock()
	e, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.g)
}

func (m *memory) Expire(ctx context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.games {
		// CreatedAt is immutable after Put, so no entry lock is needed.
		if e.g.CreatedAt.Before(cutoff) {
			delete(m.games, id)
			n++
		}
	}
	return n, nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
