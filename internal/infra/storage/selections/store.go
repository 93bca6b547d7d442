// Package selections holds in-progress booking selections in memory. This is
// the only state the gateway owns: selections are ephemeral, single-owner,
// and everything durable lives behind the salon API.
package selections

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// Store is a mutex-guarded map of live selections with idle expiry.
type Store struct {
	mu         sync.Mutex
	selections map[uuid.UUID]*domain.Selection
	ttl        time.Duration
}

// NewStore creates a store. Selections untouched for ttl are removed by Sweep.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		selections: make(map[uuid.UUID]*domain.Selection),
		ttl:        ttl,
	}
}

// Create registers a new selection.
func (s *Store) Create(sel *domain.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.selections[sel.ID]; ok {
		return ErrSelectionExists
	}
	s.selections[sel.ID] = sel.Clone()
	return nil
}

// Get returns a snapshot of the selection.
func (s *Store) Get(id uuid.UUID) (*domain.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.selections[id]
	if !ok {
		return nil, ErrSelectionNotFound
	}
	return sel.Clone(), nil
}

// Update applies fn to the stored selection under the store lock and returns
// a snapshot of the result. If fn returns an error the selection is left
// unchanged. All state-machine transitions go through here, which is what
// makes the check-then-transition sequences atomic.
func (s *Store) Update(id uuid.UUID, fn func(sel *domain.Selection) error) (*domain.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.selections[id]
	if !ok {
		return nil, ErrSelectionNotFound
	}

	scratch := sel.Clone()
	if err := fn(scratch); err != nil {
		return nil, err
	}
	scratch.UpdatedAt = time.Now()
	s.selections[id] = scratch
	return scratch.Clone(), nil
}

// Delete removes a selection (after successful submission, or on discard).
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.selections[id]; !ok {
		return ErrSelectionNotFound
	}
	delete(s.selections, id)
	return nil
}

// Len reports the number of live selections.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selections)
}

// Sweep removes selections idle for longer than the ttl and returns how many
// were dropped. A selection with a submission in flight is never swept.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sel := range s.selections {
		if sel.Submitting() {
			continue
		}
		if now.Sub(sel.UpdatedAt) > s.ttl {
			delete(s.selections, id)
			removed++
		}
	}
	return removed
}
