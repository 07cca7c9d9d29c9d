package deck

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// NewSeed returns a seed read from a cryptographically secure source.
func NewSeed() int64 {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// NewRand returns a generator seeded from NewSeed.
// A Rand is not safe for concurrent use; each game owns its own.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(NewSeed()))
}

// RandomSuit picks one of the four suits uniformly.
func RandomSuit(rng *rand.Rand) Suit {
	return Suits[rng.Intn(len(Suits))]
}
