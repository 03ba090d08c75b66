package sloth

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// the largest 256-bit prime congruent to 3 mod 4, i.e. 2^256 - 189
const largestPrime256 = "115792089237316195423570985008687907853269984665640564039457584007913129639747"

func TestNextPrevPrime(t *testing.T) {
	require.Equal(t, int64(11), NextPrime(big.NewInt(8)).Int64())
	require.Equal(t, int64(11), NextPrime(big.NewInt(7)).Int64())
	require.Equal(t, int64(7), PrevPrime(big.NewInt(11)).Int64())
	require.Equal(t, int64(7), PrevPrime(big.NewInt(8)).Int64())
}

func TestLargestPrime256Bits(t *testing.T) {
	prime := GenLargestPrime(PrimeByteSize)
	require.True(t, prime.ProbablyPrime(primeCheckIters))

	want, ok := new(big.Int).SetString(largestPrime256, 10)
	require.True(t, ok)
	require.Zero(t, prime.Cmp(want), "got %v, want %v", prime, want)
}

func TestPrimeGeneration(t *testing.T) {
	sizes := 128
	if testing.Short() {
		sizes = 16
	}
	four := big.NewInt(4)
	for size := 1; size <= sizes; size++ {
		prime := GenLargestPrime(size)
		require.True(t, prime.ProbablyPrime(primeCheckIters), "size %d: %v not prime", size, prime)
		require.Equal(t, int64(3), new(big.Int).Mod(prime, four).Int64(), "size %d", size)

		// maximality: the next prime up either exceeds the bound or
		// is not 3 mod 4
		next := NextPrime(prime)
		bound := new(big.Int).Lsh(big.NewInt(1), uint(8*size))
		bound.Sub(bound, big.NewInt(1))
		outOfBound := next.Cmp(bound) > 0
		wrongResidue := new(big.Int).Mod(next, four).Int64() != 3
		require.True(t, outOfBound || wrongResidue, "size %d: %v is a larger viable prime", size, next)
	}
}

func TestExponentExact(t *testing.T) {
	for _, size := range []int{1, 2, 8, 16, 32} {
		key, err := GenSysKey(size)
		require.NoError(t, err)

		// (P + 1) = 0 (mod 4), so E loses no remainder
		p1 := new(big.Int).Add(key.P, big.NewInt(1))
		require.Zero(t, new(big.Int).Mod(p1, big.NewInt(4)).Sign(), "size %d", size)
		require.Zero(t, new(big.Int).Mul(key.E, big.NewInt(4)).Cmp(p1), "size %d: E*4 != P+1", size)
	}
}

func TestGenSysKeyInvalidSize(t *testing.T) {
	_, err := GenSysKey(0)
	require.Error(t, err)
}
