package game

import "math/rand"

// IntRange is an inclusive integer distribution
type IntRange struct {
	Min, Max int
}

// Rand is the single random source shared by everything in a Game
type Rand struct {
	src *rand.Rand
}

// NewRand creates a random source from a seed
func NewRand(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// Pick draws uniformly from an inclusive range
func (r *Rand) Pick(rg IntRange) int {
	return r.Between(rg.Min, rg.Max)
}

// Between draws uniformly from [min, max]. A reversed range yields min.
func (r *Rand) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.src.Intn(max-min+1)
}

// Index draws a slice index in [0, n)
func (r *Rand) Index(n int) int {
	if n <= 1 {
		return 0
	}
	return r.src.Intn(n)
}
