//go:build !icicle

package gpu

import (
	"errors"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const HasIcicle = false

func MultiExpG1(_ []bls12381.G1Affine, _ []fr.Element) (bls12381.G1Affine, error) {
	return bls12381.G1Affine{}, errors.New("icicle requested but program compiled without 'icicle' build tag")
}
