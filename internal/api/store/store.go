package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
)

// DefaultCapacity is the number of runs kept before the oldest is evicted.
const DefaultCapacity = 100

// Run is one stored projection.
type Run struct {
	ID         string
	CreatedAt  time.Time
	Projection *domain.Projection
}

// Store keeps recent projection runs in memory. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	runs     map[string]*Run
	order    []string
	capacity int
	now      func() time.Time
}

// New creates a store holding at most capacity runs; zero or less means DefaultCapacity.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		runs:     make(map[string]*Run),
		capacity: capacity,
		now:      time.Now,
	}
}

// Save stores p under a fresh id.
func (s *Store) Save(p *domain.Projection) *Run {
	run := &Run{ID: uuid.NewString(), Projection: p}

	s.mu.Lock()
	defer s.mu.Unlock()
	run.CreatedAt = s.now().UTC()
	s.runs[run.ID] = run
	s.order = append(s.order, run.ID)
	for len(s.order) > s.capacity {
		delete(s.runs, s.order[0])
		s.order = s.order[1:]
	}
	return run
}

// Get returns the run with id.
func (s *Store) Get(id string) (*Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	return run, ok
}

// Len is the number of stored runs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}
