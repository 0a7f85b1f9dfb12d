// Package ticket draws the cosmetic waiting numbers shown with each reply.
package ticket

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Inclusive bounds of a waiting number.
const (
	Min = 100
	Max = 999
)

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Generator produces waiting numbers. It carries no state between draws
// beyond its random source, so repeats are possible.
type Generator struct {
	src Source
}

// NewGenerator returns a generator drawing from src. A nil src gets a
// time-seeded PCG source that is safe for concurrent use.
func NewGenerator(src Source) *Generator {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = &lockedSource{r: rand.New(rand.NewPCG(seed, seed>>1|1))}
	}
	return &Generator{src: src}
}

// Next returns a waiting number in [Min, Max].
func (g *Generator) Next() int {
	return Min + g.src.IntN(Max-Min+1)
}

type lockedSource struct {
	r  *rand.Rand
	mu sync.Mutex
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
