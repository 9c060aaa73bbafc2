package rng

import "math/rand"

// Source is the randomness contract Node.Step and Rule.Apply depend on.
// Callers select indices into match lists with Intn; Scatter-style nodes
// draw independent per-match probabilities with Float64.
type Source interface {
	// Intn returns a uniform random int in [0, n). n must be > 0.
	Intn(n int) int
	// Float64 returns a uniform random float64 in [0, 1).
	Float64() float64
}

// Rand is the default Source, backed by math/rand's non-cryptographic
// generator seeded for deterministic replay.
type Rand struct {
	r *rand.Rand
}

// New returns a Rand seeded with seed. The same seed always produces the
// same sequence of draws, independent of process or machine.
func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform random int in [0, n).
func (r *Rand) Intn(n int) int { return r.r.Intn(n) }

// Float64 returns a uniform random float64 in [0, 1).
func (r *Rand) Float64() float64 { return r.r.Float64() }
