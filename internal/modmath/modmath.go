// Package modmath provides modular arithmetic over uint64 residues.
//
// All operations use a full 128-bit intermediate product (via math/bits),
// so any modulus below 2^63 is safe without overflow tricks.
package modmath

import (
	"math/big"
	"math/bits"
)

// Mul returns (a * b) mod m.
func Mul(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	// Safe: a, b < m implies hi < m, the precondition of Div64.
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// Add returns (a + b) mod m.
func Add(a, b, m uint64) uint64 {
	a %= m
	b %= m
	if a >= m-b && b != 0 {
		return a - (m - b)
	}
	return a + b
}

// Sub returns (a - b) mod m, normalized to [0, m).
func Sub(a, b, m uint64) uint64 {
	a %= m
	b %= m
	if a < b {
		return a + (m - b)
	}
	return a - b
}

// Pow returns a^e mod m by square-and-multiply.
func Pow(a, e, m uint64) uint64 {
	a %= m
	result := uint64(1) % m
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, a, m)
		}
		a = Mul(a, a, m)
		e >>= 1
	}
	return result
}

// Inverse returns a^-1 mod m via Fermat's little theorem.
// m must be prime and a must not be a multiple of m, otherwise the
// result is meaningless.
func Inverse(a, m uint64) uint64 {
	return Pow(a, m-2, m)
}

// IsPrime reports whether n is prime. Exact for all uint64 inputs
// (big.ProbablyPrime is deterministic below 2^64).
func IsPrime(n uint64) bool {
	return new(big.Int).SetUint64(n).ProbablyPrime(0)
}
