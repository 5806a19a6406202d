package eonkzg

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/iotaledger/hive.go/ierrors"
)

const HASH_T = 2
const HASH_RF = 8
const HASH_RP = 56
const HASH_SEED = "EONKZG_POSEIDON2_TRANSCRIPT_SEED"

// setup files are "<name>.SETUP.BIN" next to a "<name>.SETUP.SHA256" digest
const SETUP_FILE_EXT = ".SETUP.BIN"
const SETUP_DIGEST_EXT = ".SETUP.SHA256"

// GPU_MSM_THRESHOLD is the number of non-zero terms above which commitments are
// routed to the GPU backend, when it is compiled in.
const GPU_MSM_THRESHOLD = 1 << 14

var FIELD = ecc.BLS12_381.ScalarField()

var G1_GEN, G2_GEN = func() (bls12381.G1Affine, bls12381.G2Affine) {
	_, _, g1, g2 := bls12381.Generators()
	return g1, g2
}()

var CID_BATCH = func() (val fr.Element) {
	val.SetString("31770583474283617418361730826298120447136349409372212961218213431409718264519")
	return
}()

var (
	ErrInvalidSetup      = ierrors.New("invalid setup")
	ErrDegreeTooLarge    = ierrors.New("coeffs length is greater than the number of secret parameters")
	ErrDivisionUndefined = ierrors.New("division undefined")
	ErrLengthMismatch    = ierrors.New("length mismatch")
)
