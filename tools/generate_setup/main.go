package main

import (
	"fmt"
	"log"
	"math/big"

	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"

	"github.com/eon-protocol/eonkzg"
)

func main() {
	secret := flag.String("secret", "", "setup secret (decimal); must be discarded after use")
	size := flag.Int("size", 16, "number of powers")
	out := flag.String("out", "eonkzg", "output path prefix")
	flag.Parse()

	s, ok := new(big.Int).SetString(*secret, 10)
	if !ok {
		log.Fatalln("invalid secret:", *secret)
	}
	bar := progressbar.Default(int64(*size), "Generating setup")
	setup, err := eonkzg.SetupParamsWithProgress(s, *size, func() {
		_ = bar.Add(1)
	})
	if err != nil {
		log.Fatalln(err)
	}
	s.SetInt64(0)
	if err := eonkzg.WriteSetupFile(*out, setup); err != nil {
		log.Fatalln(err)
	}
	digest, err := eonkzg.SetupDigest(setup)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println("sha256", "(", *out+eonkzg.SETUP_FILE_EXT, ")", "=", digest)
}
