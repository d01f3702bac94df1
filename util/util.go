// Package util provides test helpers shared across strhash packages.
package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	return r.rand.Uint64()
}

// LowercaseText generates a random text of length n over 'a'..'z'.
func (r *RNG) LowercaseText(n int) string {
	return r.Text(n, "abcdefghijklmnopqrstuvwxyz")
}

// Text generates a random text of length n drawn from the given alphabet.
func (r *RNG) Text(n int, alphabet string) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return string(buf)
}

// RepetitiveText generates a text of length n with many repeated runs,
// which stresses substring deduplication more than uniform noise.
func (r *RNG) RepetitiveText(n int, alphabet string, maxRun int) string {
	buf := make([]byte, 0, n)
	for len(buf) < n {
		c := alphabet[r.rand.Intn(len(alphabet))]
		run := 1 + r.rand.Intn(maxRun)
		for j := 0; j < run && len(buf) < n; j++ {
			buf = append(buf, c)
		}
	}
	return string(buf)
}
