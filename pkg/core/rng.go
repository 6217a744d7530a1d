package core

import "math/rand/v2"

// Source is the random stream a simulation draws from. Rule code only ever
// talks to a Source so tests can substitute a scripted stream.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// Seeder is implemented by sources that can be rewound to a new seed.
type Seeder interface {
	Seed(seed int64)
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	pcg *rand.PCG
	r   *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	pcg := rand.NewPCG(uint64(seed), 0)
	return &RNG{pcg: pcg, r: rand.New(pcg)}
}

// Seed restarts the stream as if the RNG had been created with seed.
func (r *RNG) Seed(seed int64) {
	r.pcg.Seed(uint64(seed), 0)
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a uniform value in [0, n), or 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// IntRange draws an integer in the closed range [lo, hi] from src.
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}
