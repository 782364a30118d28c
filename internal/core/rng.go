package core

import (
	"math/rand/v2"
	"time"
)

// NewRNG creates a deterministic random source using the provided seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// TimeSeed returns a seed derived from the wall clock. Only entry points
// should call it; everything below them takes an explicit seed or source.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}
