package sloth

import (
	"io"
	"math/big"
)

const (
	// BlockByteSize is the data block width: 32 bytes = 256 bits.
	BlockByteSize = 32
	// PrimeByteSize bounds the modulus: the prime fits in 256 bits.
	PrimeByteSize = 32
	// number of Miller-Rabin rounds, same confidence as pysloth
	primeCheckIters = 25
)

type SystemKey struct { // systemwide values
	P *big.Int // modulus, prime with P = 3 (mod 4)
	E *big.Int // exponent, E = (P + 1) / 4
}

// RandBlock reads a random block of size bytes from random.
func RandBlock(random io.Reader, size int) ([]byte, error) {
	block := make([]byte, size)
	_, err := io.ReadFull(random, block)
	return block, err
}
