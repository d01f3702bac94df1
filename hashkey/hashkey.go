// Package hashkey turns fingerprint residues into well-mixed map keys.
//
// Identity hashing of residues invites worst-case O(n^2) degradation in
// hash-based containers: an adversary who knows the moduli can craft
// inputs whose residues all land in one bucket. Every function here mixes
// its input through splitmix64 together with a random per-process seed,
// so bucket placement cannot be precomputed across runs.
//
// All functions are deterministic within a process run and MAY differ
// across runs. None of them is cryptographic.
package hashkey

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"

	"github.com/strhash-go/strhash"
)

// golden is the 64-bit golden ratio constant used both as the splitmix64
// increment and as the fold offset.
const golden = 0x9e3779b97f4a7c15

var (
	seedOnce sync.Once
	seed     uint64
)

// processSeed returns the per-process random seed, initializing it on
// first use. Initialization is race-free via sync.Once; reads after that
// need no synchronization because the value never changes again.
func processSeed() uint64 {
	seedOnce.Do(func() {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			// crypto/rand failing is effectively fatal elsewhere; a
			// clock-derived seed still defeats precomputed floods.
			seed = uint64(time.Now().UnixNano())
			return
		}
		seed = binary.LittleEndian.Uint64(buf[:])
	})
	return seed
}

// splitmix64 is the splitmix64 finalizer: every output bit depends on
// every input bit.
func splitmix64(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Scalar maps a single integer to a well-mixed integer of the same width.
func Scalar(x uint64) uint64 {
	return splitmix64(x + processSeed())
}

// fold accumulates one value into a running key, order-sensitively.
func fold(h, x uint64) uint64 {
	return h ^ (Scalar(x) + golden + h<<6 + h>>2)
}

// Pair combines two integers into one mixed key. The combination is
// order-sensitive: Pair(x, y) and Pair(y, x) differ in general, and
// Pair(x, y) == Sequence([]uint64{x, y}).
func Pair(x, y uint64) uint64 {
	return fold(fold(0, x), y)
}

// Sequence combines an ordered sequence of integers into one mixed key
// via an append-only fold, so permutations of the same values produce
// different keys. Sequence(nil) is 0.
func Sequence(xs []uint64) uint64 {
	var h uint64
	for _, x := range xs {
		h = fold(h, x)
	}
	return h
}

// ForFingerprint returns the map key for a generic K-residue fingerprint.
func ForFingerprint(fp strhash.Fingerprint) uint64 {
	return Sequence(fp)
}

// ForPair returns the map key for a two-residue fingerprint. It matches
// ForFingerprint of the equivalent two-element fingerprint.
func ForPair(p strhash.Pair) uint64 {
	return Pair(p.H1, p.H2)
}
