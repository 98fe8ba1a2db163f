package school

import (
	"math/rand"
	"time"
)

// NewRNG returns the random source for a school. A zero seed picks one from
// the clock; the seed used is returned so a session can be replayed.
func NewRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
