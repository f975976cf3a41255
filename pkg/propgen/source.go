package propgen

import (
	"math/rand"
	"time"
)

// Source wraps a seeded random number generator for reproducible value
// generation. The seed is kept so a failing run can be replayed.
//
// A Source is a single mutable stream: every choice advances its state.
// Resolutions running on separate goroutines must each own their own
// Source to stay reproducible.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// NewSource creates a new Source with the given seed.
// If seed is 0, uses the current time as the seed.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed used by this source.
// Log it on test failure so the failure can be reproduced.
func (s *Source) Seed() int64 {
	return s.seed
}

// Intn returns a random int in [0, n).
// Panics if n <= 0.
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Int63n returns a random int64 in [0, n).
// Panics if n <= 0.
func (s *Source) Int63n(n int64) int64 {
	return s.rng.Int63n(n)
}

// Int63 returns a non-negative random int64
func (s *Source) Int63() int64 {
	return s.rng.Int63()
}

// IntRange returns a random int in [min, max]
func (s *Source) IntRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Float64 returns a random float64 in [0.0, 1.0)
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Bool returns a random boolean with equal probability for each value
func (s *Source) Bool() bool {
	return s.rng.Intn(2) == 1
}

// Read fills p with random bytes. It implements io.Reader so the
// source can drive byte-oriented producers deterministically.
func (s *Source) Read(p []byte) (int, error) {
	return s.rng.Read(p)
}
