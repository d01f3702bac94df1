package modmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// largest prime below 2^63; products of residues need the full 128-bit
// intermediate to reduce correctly.
const big63 = uint64(9223372036854775783)

func TestMul(t *testing.T) {
	t.Run("Small", func(t *testing.T) {
		assert.Equal(t, uint64(6), Mul(2, 3, 7))
		assert.Equal(t, uint64(1), Mul(3, 5, 7))
		assert.Equal(t, uint64(0), Mul(0, 5, 7))
	})

	t.Run("NearModulus", func(t *testing.T) {
		// (-1) * (-1) == 1 mod p
		assert.Equal(t, uint64(1), Mul(big63-1, big63-1, big63))
		// (-1) * 2 == p - 2
		assert.Equal(t, big63-2, Mul(big63-1, 2, big63))
	})

	t.Run("ReducesInputs", func(t *testing.T) {
		assert.Equal(t, Mul(3, 5, 7), Mul(3+7, 5+14, 7))
	})
}

func TestAddSub(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, uint64(1), Add(3, 5, 7))
		assert.Equal(t, uint64(0), Add(0, 0, 7))
		assert.Equal(t, big63-2, Add(big63-1, big63-1, big63))
	})

	t.Run("Sub", func(t *testing.T) {
		assert.Equal(t, uint64(5), Sub(3, 5, 7))
		assert.Equal(t, uint64(2), Sub(5, 3, 7))
		assert.Equal(t, uint64(0), Sub(4, 4, 7))
	})

	t.Run("SubInverseOfAdd", func(t *testing.T) {
		for a := uint64(0); a < 20; a++ {
			for b := uint64(0); b < 20; b++ {
				assert.Equal(t, a%13, Sub(Add(a, b, 13), b, 13))
			}
		}
	})
}

func TestPow(t *testing.T) {
	assert.Equal(t, uint64(1), Pow(31, 0, 1_000_000_009))
	assert.Equal(t, uint64(1024), Pow(2, 10, 1_000_000_007))
	assert.Equal(t, uint64(0), Pow(7, 3, 7))

	// Fermat: a^(p-1) == 1 mod p for prime p, a not a multiple of p.
	assert.Equal(t, uint64(1), Pow(31, 1_000_000_008, 1_000_000_009))
	assert.Equal(t, uint64(1), Pow(2, big63-1, big63))
}

func TestInverse(t *testing.T) {
	primes := []uint64{5, 7, 1_000_000_009, 100_000_007, 998244353, big63}
	for _, p := range primes {
		for _, a := range []uint64{1, 2, 31, 1234567, p - 1} {
			inv := Inverse(a, p)
			require.Equal(t, uint64(1), Mul(a, inv, p), "a=%d p=%d", a, p)
		}
	}
}

func TestIsPrime(t *testing.T) {
	prime := []uint64{2, 3, 5, 31, 998244353, 100_000_007, 1_000_000_007, 1_000_000_009, big63}
	for _, p := range prime {
		assert.True(t, IsPrime(p), "%d", p)
	}

	composite := []uint64{0, 1, 4, 9, 1_000_000_008, 31 * 31, big63 - 1}
	for _, n := range composite {
		assert.False(t, IsPrime(n), "%d", n)
	}
}
