package pong

import "math/rand"

// RNG draws serve angles. It is seeded once per match rather than per draw,
// so resets within the same clock tick still get independent values.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a generator from a fixed seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniformly distributed integer in [min, max].
// Swapped bounds are tolerated.
func (g *RNG) IntRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + g.r.Intn(max-min+1)
}
