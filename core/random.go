package core

import (
	"math/rand/v2"
)

// Rand is the pseudo-random source injected into the evasion controller and
// celebration scheduler
type Rand interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
	// IntN returns a value in [0, n)
	IntN(n int) int
}

// NewRand returns a PCG-backed source; zero seeds draw from the runtime source
func NewRand(seed uint64) Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SequenceRand replays a fixed list of Float64 values, wrapping at the end
// IntN maps the next value onto [0, n)
type SequenceRand struct {
	values []float64
	next   int
}

// NewSequenceRand creates a deterministic source over values
func NewSequenceRand(values ...float64) *SequenceRand {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &SequenceRand{values: values}
}

// Float64 returns the next value in the sequence
func (s *SequenceRand) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// IntN returns the next value scaled to [0, n)
func (s *SequenceRand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
