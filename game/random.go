package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Random is a uniform source in [0, 1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// NewRandom returns a seeded source. A zero seed is replaced by one read from crypto/rand,
// so only explicitly seeded rounds are reproducible.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = NewSeed()
	}
	return rand.New(rand.NewSource(seed))
}

func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
