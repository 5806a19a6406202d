package eonkzg

import (
	"log"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/eon-protocol/eonkzg/gpu"
)

// Commitment binds a polynomial to a setup. Value is Σ coeffs[i]·[s^i]G1.
type Commitment struct {
	setup      *Setup
	polynomial Polynomial
	value      bls12381.G1Affine
}

// FromCoeffs commits to the polynomial with the given coefficients. It fails with
// ErrDegreeTooLarge, before any group operation, when the setup is too small.
func FromCoeffs[T Value](setup *Setup, coeffs []T) (*Commitment, error) {
	if len(coeffs) > setup.Size() {
		return nil, ierrors.Wrapf(ErrDegreeTooLarge, "%d coeffs, setup size %d", len(coeffs), setup.Size())
	}
	p := NewPolynomial(coeffs)
	return &Commitment{
		setup:      setup,
		polynomial: p,
		value:      commitG1(setup.g1, p.coeffs),
	}, nil
}

func (me *Commitment) Value() bls12381.G1Affine {
	return me.value
}

func (me *Commitment) Polynomial() Polynomial {
	return me.polynomial
}

func (me *Commitment) Setup() *Setup {
	return me.setup
}

// ComputeProof returns the opening proof for the evaluation at x: the commitment
// to (P(X) - P(x)) / (X - x).
func (me *Commitment) ComputeProof(x fr.Element) bls12381.G1Affine {
	divisor := make([]fr.Element, 2)
	divisor[0].Neg(&x)
	divisor[1].SetOne()
	q, err := me.polynomial.PolyLongDiv(divisor)
	if err != nil {
		// monic divisor
		log.Panicln(err)
	}
	return commitG1(me.setup.g1, q)
}

// ComputeMultiProof returns the opening proof for the evaluations at all xs:
// the commitment to (P - I) / Z, where I interpolates P on xs and Z vanishes on xs.
func (me *Commitment) ComputeMultiProof(xs []fr.Element) (bls12381.G1Affine, error) {
	if len(xs) == 0 {
		return bls12381.G1Affine{}, ierrors.Wrap(ErrLengthMismatch, "multi proof needs at least one point")
	}
	ys := make([]fr.Element, len(xs))
	for i := range xs {
		ys[i] = me.polynomial.EvalAt(xs[i])
	}
	ip, err := LagrangeInterpolate(xs, ys)
	if err != nil {
		return bls12381.G1Affine{}, err
	}
	q, err := me.polynomial.Sub(ip).PolyLongDiv(ZeroPoly(xs).coeffs)
	if err != nil {
		return bls12381.G1Affine{}, err
	}
	return commitG1(me.setup.g1, q), nil
}

// Open returns the proof for x together with its claim.
func (me *Commitment) Open(x fr.Element) OpeningProof {
	return OpeningProof{
		H:            me.ComputeProof(x),
		Point:        x,
		ClaimedValue: me.polynomial.EvalAt(x),
	}
}

// commitG1 computes Σ coeffs[i]·bases[i], skipping zero coefficients.
// len(coeffs) <= len(bases) is the caller's job.
func commitG1(bases []bls12381.G1Affine, coeffs []fr.Element) bls12381.G1Affine {
	points, scalars := nonZeroTerms(bases, coeffs)
	var ret bls12381.G1Affine
	if len(scalars) == 0 {
		return ret
	}
	if gpu.HasIcicle && len(scalars) >= GPU_MSM_THRESHOLD {
		res, err := gpu.MultiExpG1(points, scalars)
		if err == nil {
			return res
		}
		log.Println("gpu msm failed; falling back to cpu:", err)
	}
	if _, err := ret.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		log.Panicln(err)
	}
	return ret
}

// commitG2 is commitG1 over the G2 powers.
func commitG2(bases []bls12381.G2Affine, coeffs []fr.Element) bls12381.G2Affine {
	points, scalars := nonZeroTerms(bases, coeffs)
	var ret bls12381.G2Affine
	if len(scalars) == 0 {
		return ret
	}
	if _, err := ret.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		log.Panicln(err)
	}
	return ret
}

func nonZeroTerms[P any](bases []P, coeffs []fr.Element) ([]P, []fr.Element) {
	points := make([]P, 0, len(coeffs))
	scalars := make([]fr.Element, 0, len(coeffs))
	for i := range coeffs {
		if coeffs[i].IsZero() {
			continue
		}
		points = append(points, bases[i])
		scalars = append(scalars, coeffs[i])
	}
	return points, scalars
}
