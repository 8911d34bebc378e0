package random

import (
	"math/rand"
	"sync"
)

// Source is the randomness used for booking codes, sleep times and option
// prices. It is injected so tests can seed deterministic sequences.
type Source interface {
	Intn(n int) int
	Float64() float64
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSource returns a Source safe for use from concurrent request handlers.
func NewSource(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}
