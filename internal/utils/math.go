package utils

import (
	"math/rand/v2"
	"sync"
)

// Sampler is the random source behind every selection in the economy.
// Float64 returns a value in [0,1); IntN returns a value in [0,n).
type Sampler interface {
	Float64() float64
	IntN(n int) int
}

type globalSampler struct{}

// NewSampler returns a Sampler backed by the runtime's global generator
func NewSampler() Sampler {
	return globalSampler{}
}

func (globalSampler) Float64() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

func (globalSampler) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // Game logic randomness, not security critical
}

// PickOne returns a uniformly chosen element without copying or shuffling items.
// ok is false when items is empty.
func PickOne[T any](s Sampler, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[s.IntN(len(items))], true
}

// SequenceSampler replays fixed values, cycling when exhausted.
// IntN results are reduced modulo n so any preset index stays in range.
type SequenceSampler struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	fi, ii int
}

// NewSequenceSampler builds a deterministic Sampler for tests and replays
func NewSequenceSampler(floats []float64, ints []int) *SequenceSampler {
	return &SequenceSampler{floats: floats, ints: ints}
}

func (s *SequenceSampler) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *SequenceSampler) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 || n <= 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	if v < 0 {
		v = -v
	}
	return v % n
}
