package dal

import (
	"sync"

	"github.com/covidboard/api/covid/domain"
)

// InMemoryStore holds the cleaned dataset for the life of the process.
// Replace swaps the whole dataset at once, so readers either see the previous
// table or the new one, never a partial state.
type InMemoryStore struct {
	mu      sync.RWMutex
	dataset *domain.Dataset
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Replace(dataset *domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dataset = dataset
}

func (s *InMemoryStore) Dataset() (*domain.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dataset, s.dataset != nil
}
