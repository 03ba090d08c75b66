package sloth

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// NextPrime returns the smallest probable prime strictly greater than p.
func NextPrime(p *big.Int) *big.Int {
	q := new(big.Int).Set(p)
	if q.Bit(0) == 0 {
		q.Add(q, one)
	} else {
		q.Add(q, two)
	}
	for !q.ProbablyPrime(primeCheckIters) {
		q.Add(q, two)
	}
	return q
}

// PrevPrime returns the largest probable prime strictly less than p.
func PrevPrime(p *big.Int) *big.Int {
	q := new(big.Int).Set(p)
	if q.Bit(0) == 0 {
		q.Sub(q, one)
	} else {
		q.Sub(q, two)
	}
	for !q.ProbablyPrime(primeCheckIters) {
		q.Sub(q, two)
	}
	return q
}

// GenLargestPrime returns the largest probable prime that fits in
// maxBytes bytes and is congruent to 3 mod 4, as required for square
// root extraction by exponentiation.
func GenLargestPrime(maxBytes int) *big.Int {
	// start from 2^(8*maxBytes) - 1 and walk down
	prime := new(big.Int).Lsh(one, uint(8*maxBytes))
	prime.Sub(prime, one)
	prime = PrevPrime(prime)
	for new(big.Int).Mod(prime, four).Cmp(three) != 0 {
		DPrintf("prime candidate %v rejected: not 3 mod 4", prime)
		prime = PrevPrime(prime)
	}
	return prime
}

// GenSysKey generates the largest viable modulus for blocks of maxBytes
// bytes, together with the square root exponent E = (P + 1) / 4. The
// division is exact because P = 3 (mod 4).
func GenSysKey(maxBytes int) (*SystemKey, error) {
	if maxBytes < 1 {
		return nil, errors.Errorf("block size must be at least 1 byte, got %d", maxBytes)
	}
	p := GenLargestPrime(maxBytes)
	e := new(big.Int).Add(p, one)
	e.Rsh(e, 2)
	return &SystemKey{P: p, E: e}, nil
}
