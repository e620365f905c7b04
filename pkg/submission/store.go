package submission

import (
	"sync"

	"github.com/goliatone/go-riskform/pkg/model"
)

// Store holds the most recent prediction outcome. It is empty until the first
// successful submission and after a reset. Each success replaces the previous
// outcome.
type Store struct {
	mu      sync.RWMutex
	outcome model.PredictionOutcome
	ok      bool
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the stored outcome.
func (s *Store) Set(outcome model.PredictionOutcome) {
	s.mu.Lock()
	s.outcome = outcome
	s.ok = true
	s.mu.Unlock()
}

// Clear empties the store.
func (s *Store) Clear() {
	s.mu.Lock()
	s.outcome = model.PredictionOutcome{}
	s.ok = false
	s.mu.Unlock()
}

// Outcome returns the stored outcome and whether one is present.
func (s *Store) Outcome() (model.PredictionOutcome, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outcome, s.ok
}
