package domain

import "math/rand"

// RandomSource is the randomness the synthetic generator draws from.
// *rand.Rand satisfies it.
type RandomSource interface {
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64

	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// NewSeededRandom returns a deterministic source: the same seed yields the same sequence.
func NewSeededRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

var _ RandomSource = (*rand.Rand)(nil)
