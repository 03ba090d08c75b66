package sloth

import (
	"math/big"

	"github.com/pkg/errors"
)

// FromBlock interprets block as a non-negative integer in base 256 with
// the least significant byte first (byte 0 is the lowest-order byte).
func FromBlock(block []byte) *big.Int {
	buf := make([]byte, len(block))
	for i := range block {
		buf[len(block)-1-i] = block[i]
	}
	return new(big.Int).SetBytes(buf)
}

// ToBlock writes x into a zero-initialized block of size bytes, least
// significant byte first. Returns an error if x is negative or does not
// fit in 8*size bits; values produced by the permutation are always
// below the prime and therefore always fit.
func ToBlock(x *big.Int, size int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, errors.Errorf("cannot encode negative value into a block")
	}
	if x.BitLen() > 8*size {
		return nil, errors.Errorf("value of %d bits does not fit in a %d byte block", x.BitLen(), size)
	}
	raw := x.Bytes() // big-endian
	block := make([]byte, size)
	for i := range raw {
		block[len(raw)-1-i] = raw[i]
	}
	return block, nil
}
