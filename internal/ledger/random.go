package ledger

import (
	"math/rand/v2"
	"sync"
)

// RandomSource draws grind rewards. IntN returns a value in [0, n).
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultRandomSource uses the runtime-seeded global generator
func DefaultRandomSource() RandomSource {
	return globalSource{}
}

type seededSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededSource returns a deterministic source that is safe for concurrent use
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// uniform draws from [min, max)
func uniform(src RandomSource, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.IntN(max-min)
}
