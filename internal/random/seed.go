// Package random seeds the pseudo-random generators used for damage rolls.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a generator seeded with *seed, or with a fresh crypto seed
// when seed is nil. Zero is an ordinary fixed seed.
func New(seed *int64) (*rand.Rand, error) {
	if seed != nil {
		return rand.New(rand.NewSource(*seed)), nil
	}
	s, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewSource(s)), nil
}
