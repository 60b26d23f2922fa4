// Package session keeps live wizard instances in process memory. A wizard
// survives exactly as long as one user's reservation attempt; nothing here
// outlives a restart, which matches the form it replaces.
package session

import (
	"sync"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/pkg/clock"

	"github.com/google/uuid"
)

type entry struct {
	mu       sync.Mutex
	wizard   *booking.Wizard
	lastSeen time.Time
}

type Store struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*entry
	ttl   time.Duration
	clock clock.Clock
}

func NewStore(ttl time.Duration, clk clock.Clock) *Store {
	return &Store{
		items: make(map[uuid.UUID]*entry),
		ttl:   ttl,
		clock: clk,
	}
}

func (s *Store) Put(w *booking.Wizard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[w.ID()] = &entry{wizard: w, lastSeen: s.clock.Now()}
}

// Acquire locks the instance for exclusive use. Per-instance locking is what
// turns the wizard's single-threaded execution model into a safe HTTP
// surface: two requests for the same instance serialize here, while distinct
// instances never contend.
func (s *Store) Acquire(id uuid.UUID) (*booking.Wizard, func(), bool) {
	s.mu.RLock()
	e, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil, false
	}

	e.mu.Lock()
	e.lastSeen = s.clock.Now()
	return e.wizard, e.mu.Unlock, true
}

// Sweep drops instances idle past the TTL and reports how many were removed.
// The bootstrap runs it on a ticker.
func (s *Store) Sweep() int {
	cutoff := s.clock.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.items {
		if e.lastSeen.Before(cutoff) {
			delete(s.items, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
