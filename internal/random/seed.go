package random

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	mathrand "math/rand"
)

// NewSeed returns a cryptographically random seed.
func NewSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) & math.MaxInt64), nil
}

// Source returns a math/rand source for seed, drawing a fresh seed when seed is 0.
func Source(seed int64) (mathrand.Source, int64, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, 0, err
		}
	}
	return mathrand.NewSource(seed), seed, nil
}
