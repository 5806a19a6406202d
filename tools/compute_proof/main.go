package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"math/big"
	"os"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	flag "github.com/spf13/pflag"

	"github.com/eon-protocol/eonkzg"
)

func main() {
	path := flag.String("setup", "eonkzg", "setup path prefix")
	point := flag.String("x", "0", "evaluation point (decimal)")
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatalln("usage:", os.Args[0], "[--setup <prefix>] [--x <point>]", "<coeff>...")
	}
	setup, err := eonkzg.ReadSetupFile(*path)
	if err != nil {
		log.Fatalln(err)
	}
	coeffs := make([]*big.Int, flag.NArg())
	for i, arg := range flag.Args() {
		c, ok := new(big.Int).SetString(arg, 10)
		if !ok {
			log.Fatalln("invalid coefficient:", arg)
		}
		coeffs[i] = c
	}
	x, ok := new(big.Int).SetString(*point, 10)
	if !ok {
		log.Fatalln("invalid point:", *point)
	}
	commitment, err := eonkzg.FromCoeffs(setup, coeffs)
	if err != nil {
		log.Fatalln(err)
	}
	proof := commitment.Open(eonkzg.NewScalar(x))

	value := commitment.Value()
	enc := hex.NewEncoder(os.Stdout)
	fmt.Print("commitment ")
	if err := bls12381.NewEncoder(enc).Encode(&value); err != nil {
		log.Fatalln(err)
	}
	fmt.Println()
	fmt.Println("value", proof.ClaimedValue.String())
	fmt.Print("proof ")
	if _, err := proof.WriteTo(enc); err != nil {
		log.Fatalln(err)
	}
	fmt.Println()
}
