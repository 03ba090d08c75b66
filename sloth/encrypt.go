package sloth

import (
	"math/big"

	"github.com/pkg/errors"
)

// SqrtPermutation computes the modular square root permutation of
// input, serving as the "encode" stage. exp must be (prime + 1) / 4 and
// prime must be congruent to 3 mod 4; input must lie in [0, prime).
//
// The Legendre symbol selects whether input itself or its additive
// complement prime - input has a square root, and the parity of the
// extracted root decides which of the two roots {r, prime - r} is
// returned, making the map a bijection on [0, prime).
func SqrtPermutation(input, exp, prime *big.Int) *big.Int {
	result := new(big.Int)
	if big.Jacobi(input, prime) == 1 {
		// quadratic residue: root of input, canonicalized to even
		result.Exp(input, exp, prime)
		if result.Bit(0) == 1 {
			result.Sub(prime, result)
		}
	} else {
		// non-residue: root of prime - input, canonicalized to odd
		tmp := new(big.Int).Sub(prime, input)
		result.Exp(tmp, exp, prime)
		if result.Bit(0) == 0 {
			result.Sub(prime, result)
		}
	}
	assertf(result.Cmp(prime) < 0, "permutation result %v not below prime %v", result, prime)
	return result
}

// InverseSqrt squares input mod prime, undoing SqrtPermutation. The
// parity check is on the input, not on the square: it reverses the
// even/odd canonicalization the forward step applied last.
func InverseSqrt(input, prime *big.Int) *big.Int {
	result := new(big.Int).Mul(input, input)
	result.Mod(result, prime)
	if input.Bit(0) == 1 {
		result.Sub(prime, result)
	}
	return result
}

// Encrypt runs the forward permutation on a block.
func Encrypt(key *SystemKey, block []byte) ([]byte, error) {
	perm := SqrtPermutation(FromBlock(block), key.E, key.P)
	out, err := ToBlock(perm, len(block))
	if err != nil {
		return nil, errors.Wrap(err, "encrypt")
	}
	return out, nil
}

// Decrypt reverses Encrypt.
func Decrypt(key *SystemKey, block []byte) ([]byte, error) {
	inv := InverseSqrt(FromBlock(block), key.P)
	out, err := ToBlock(inv, len(block))
	if err != nil {
		return nil, errors.Wrap(err, "decrypt")
	}
	return out, nil
}
