package engine

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Selector picks one reply among an intent's responses.
type Selector interface {
	Pick(responses []string) (string, bool)
}

// RandomSelector picks uniformly at random from a seedable source.
// Safe for concurrent use.
type RandomSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSelector returns a selector seeded with seed, or with the clock when seed is 0.
func NewRandomSelector(seed uint64) *RandomSelector {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomSelector{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandomSelector) Pick(responses []string) (string, bool) {
	if len(responses) == 0 {
		return "", false
	}
	s.mu.Lock()
	i := s.rng.IntN(len(responses))
	s.mu.Unlock()
	return responses[i], true
}
