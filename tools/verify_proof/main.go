package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	flag "github.com/spf13/pflag"

	"github.com/eon-protocol/eonkzg"
)

func main() {
	path := flag.String("setup", "eonkzg", "setup path prefix")
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalln("usage:", os.Args[0], "[--setup <prefix>]", "<commitment>", "<proof>")
	}
	setup, err := eonkzg.ReadSetupFile(*path)
	if err != nil {
		log.Fatalln(err)
	}
	var commitment bls12381.G1Affine
	if err := bls12381.NewDecoder(hex.NewDecoder(strings.NewReader(flag.Arg(0)))).Decode(&commitment); err != nil {
		log.Fatalln(err)
	}
	var proof eonkzg.OpeningProof
	if _, err := proof.ReadFrom(hex.NewDecoder(strings.NewReader(flag.Arg(1)))); err != nil {
		log.Fatalln(err)
	}
	if !proof.Verify(setup, commitment) {
		fmt.Println("invalid")
		os.Exit(1)
	}
	fmt.Println("valid")
}
