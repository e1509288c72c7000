package ai

import (
	"math/rand"
	"time"
)

// Rand is the random source the controller draws jitter from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source; seed 0 picks a time-based seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func randomFloat(r Rand) float64 {
	if r == nil {
		return rand.Float64()
	}
	return r.Float64()
}
