package main

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"sloth/sloth"
)

// VERSION is populated via build flags when packaging binaries.
var VERSION = "SELFBUILD"

func main() {
	myApp := cli.NewApp()
	myApp.Name = "sloth"
	myApp.Usage = "modular square root permutation (encode/decode round trip)"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "size,s",
			Value: sloth.BlockByteSize,
			Usage: "block size in bytes",
		},
		cli.IntFlag{
			Name:  "rounds,n",
			Value: 1,
			Usage: "number of independent encode/decode rounds to run",
		},
		cli.BoolFlag{
			Name:  "verbose,v",
			Usage: "dump intermediate values",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		size := c.Int("size")
		rounds := c.Int("rounds")
		verbose := c.Bool("verbose")

		start := time.Now()
		key, err := sloth.GenSysKey(size)
		if err != nil {
			return errors.Wrap(err, "keygen")
		}
		log.Printf("generated %d bit modulus in %v", key.P.BitLen(), time.Since(start))
		if verbose {
			fmt.Print(spew.Sdump(key))
		}

		for i := 0; i < rounds; i++ {
			if err := runRound(key, size, verbose); err != nil {
				return err
			}
		}
		log.Printf("%d round(s) ok", rounds)
		return nil
	}
	if err := myApp.Run(os.Args); err != nil {
		log.Fatalf("%+v", err)
	}
}

// runRound samples a random block, encodes it, decodes it back and
// fails hard if the round trip does not reproduce the block.
func runRound(key *sloth.SystemKey, size int, verbose bool) error {
	id := uuid.New()
	blockIn, err := sloth.RandBlock(rand.Reader, size)
	if err != nil {
		return errors.Wrap(err, "sampling block")
	}

	start := time.Now()
	enc, err := sloth.Encrypt(key, blockIn)
	if err != nil {
		return errors.Wrapf(err, "round %s: encode", id)
	}
	encoded := time.Since(start)

	start = time.Now()
	blockOut, err := sloth.Decrypt(key, enc)
	if err != nil {
		return errors.Wrapf(err, "round %s: decode", id)
	}
	decoded := time.Since(start)

	if verbose {
		fmt.Print(spew.Sdump(blockIn, enc, blockOut))
	}
	if !bytes.Equal(blockIn, blockOut) {
		return errors.Errorf("round %s: round trip mismatch: %x != %x", id, blockIn, blockOut)
	}
	log.Printf("round %s: encode %v, decode %v", id, encoded, decoded)
	return nil
}
