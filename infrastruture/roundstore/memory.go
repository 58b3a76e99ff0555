package roundstore

import (
	"errors"
	"sync"

	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/google/uuid"
)

var ErrRoundNotFound = errors.New("round not found")

// MemoryStore keeps live rounds in memory. Rounds are discarded when deleted or when the process exits.
type MemoryStore struct {
	rounds       map[uuid.UUID]*service.Round
	sync.RWMutex // Lock for thread safety.
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rounds: make(map[uuid.UUID]*service.Round),
	}
}

// Save inserts or replaces a round.
func (s *MemoryStore) Save(round *service.Round) error {
	if round == nil {
		return errors.New("nil round")
	}
	s.Lock()
	defer s.Unlock()
	s.rounds[round.ID] = round
	return nil
}

// ByID retrieves a round by its ID.
// Returns ErrRoundNotFound if there is no such round.
func (s *MemoryStore) ByID(id uuid.UUID) (*service.Round, error) {
	s.RLock()
	defer s.RUnlock()
	round, ok := s.rounds[id]
	if !ok {
		return nil, ErrRoundNotFound
	}
	return round, nil
}

// Delete removes a round.
// Returns ErrRoundNotFound if there is no such round.
func (s *MemoryStore) Delete(id uuid.UUID) error {
	s.Lock()
	defer s.Unlock()
	if _, ok := s.rounds[id]; !ok {
		return ErrRoundNotFound
	}
	delete(s.rounds, id)
	return nil
}

// Count returns the number of live rounds.
func (s *MemoryStore) Count() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.rounds)
}
