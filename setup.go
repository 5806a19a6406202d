package eonkzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// Setup holds the public parameters [s^i]G1 and [s^i]G2 for i < n.
// It is never mutated after construction and may be shared freely.
type Setup struct {
	g1 []bls12381.G1Affine
	g2 []bls12381.G2Affine
}

// SetupParams computes a setup of size n from secret. The secret is not kept;
// its provenance and destruction are the caller's business (usually an MPC).
func SetupParams[T Value](secret T, n int) (*Setup, error) {
	return SetupParamsWithProgress(secret, n, nil)
}

// SetupParamsWithProgress is SetupParams calling progress once per generated index.
func SetupParamsWithProgress[T Value](secret T, n int, progress func()) (*Setup, error) {
	if n < 1 {
		return nil, ierrors.Wrapf(ErrInvalidSetup, "size %d", n)
	}
	s := NewScalar(secret)
	spow := fr.One()
	g1 := make([]bls12381.G1Affine, n)
	g2 := make([]bls12381.G2Affine, n)
	for i := 0; i < n; i++ {
		e := scalarToBig(&spow)
		g1[i].ScalarMultiplication(&G1_GEN, e)
		g2[i].ScalarMultiplication(&G2_GEN, e)
		spow.Mul(&spow, &s)
		if progress != nil {
			progress()
		}
	}
	s.SetZero()
	return &Setup{g1: g1, g2: g2}, nil
}

// NewSetup builds a setup from existing points, checking that both sequences
// have the same non-zero length, start at the generators and lie in the
// prime-order subgroups.
func NewSetup(g1 []bls12381.G1Affine, g2 []bls12381.G2Affine) (*Setup, error) {
	if len(g1) == 0 || len(g1) != len(g2) {
		return nil, ierrors.Wrapf(ErrInvalidSetup, "%d g1 points, %d g2 points", len(g1), len(g2))
	}
	if !g1[0].Equal(&G1_GEN) || !g2[0].Equal(&G2_GEN) {
		return nil, ierrors.Wrap(ErrInvalidSetup, "first points are not the generators")
	}
	for i := range g1 {
		if !g1[i].IsInSubGroup() {
			return nil, ierrors.Wrapf(ErrInvalidSetup, "g1 point %d not in sub group", i)
		}
		if !g2[i].IsInSubGroup() {
			return nil, ierrors.Wrapf(ErrInvalidSetup, "g2 point %d not in sub group", i)
		}
	}
	return &Setup{g1: lo.CopySlice(g1), g2: lo.CopySlice(g2)}, nil
}

func (me *Setup) Size() int {
	return len(me.g1)
}

// G1Points returns a copy of the G1 powers.
func (me *Setup) G1Points() []bls12381.G1Affine {
	return lo.CopySlice(me.g1)
}

// G2Points returns a copy of the G2 powers.
func (me *Setup) G2Points() []bls12381.G2Affine {
	return lo.CopySlice(me.g2)
}

func (me *Setup) Equal(other *Setup) bool {
	if me == nil || other == nil {
		return me == other
	}
	return lo.Equal(me.g1, other.g1) && lo.Equal(me.g2, other.g2)
}

// SRS exposes the setup as a gnark-crypto KZG SRS, so that proofs made here can
// be checked by kzg.Verify and by the in-circuit verifier.
func (me *Setup) SRS() (*kzg.SRS, error) {
	if me.Size() < 2 {
		return nil, ierrors.Wrapf(ErrInvalidSetup, "srs needs at least 2 points, have %d", me.Size())
	}
	var srs kzg.SRS
	srs.Pk.G1 = me.G1Points()
	srs.Vk.G1 = me.g1[0]
	srs.Vk.G2[0] = me.g2[0]
	srs.Vk.G2[1] = me.g2[1]
	srs.Vk.Lines[0] = bls12381.PrecomputeLines(srs.Vk.G2[0])
	srs.Vk.Lines[1] = bls12381.PrecomputeLines(srs.Vk.G2[1])
	return &srs, nil
}

// CommitToPoly commits to coeffs without keeping a Commitment around.
func (me *Setup) CommitToPoly(coeffs []fr.Element) (bls12381.G1Affine, error) {
	if len(coeffs) > me.Size() {
		return bls12381.G1Affine{}, ierrors.Wrapf(ErrDegreeTooLarge, "%d coeffs, setup size %d", len(coeffs), me.Size())
	}
	return commitG1(me.g1, coeffs), nil
}

// ComputeProof is the coefficient-form shortcut for FromCoeffs(...).ComputeProof(x).
func (me *Setup) ComputeProof(coeffs []fr.Element, x fr.Element) (bls12381.G1Affine, error) {
	c, err := FromCoeffs(me, coeffs)
	if err != nil {
		return bls12381.G1Affine{}, err
	}
	return c.ComputeProof(x), nil
}
