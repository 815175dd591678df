package subkiller

import "math/rand"

// Rand is the source of randomness used by the submarine.
// *rand.Rand satisfies it; tests substitute a scripted source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

func newRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
