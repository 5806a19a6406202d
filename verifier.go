package eonkzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ValidProof checks that proof opens commitment to y at x:
//
//	e([commitment - y]^(-1), [1]) * e([proof], [s - x]) = 1
//
// Both pairings skip the final exponentiation, which is applied once to their
// product.
func (me *Setup) ValidProof(commitment, proof bls12381.G1Affine, x, y fr.Element) bool {
	if me.Size() < 2 {
		return false
	}
	// [s - x]₂
	var sx bls12381.G2Jac
	sx.FromAffine(&me.g2[1])
	if !x.IsZero() {
		var xg2 bls12381.G2Affine
		xg2.ScalarMultiplication(&G2_GEN, scalarToBig(&x))
		var xg2j bls12381.G2Jac
		sx.SubAssign(xg2j.FromAffine(&xg2))
	}
	var sxAff bls12381.G2Affine
	sxAff.FromJacobian(&sx)
	return pairingProductIsOne(residual(commitment, y), proof, sxAff)
}

// ValidMultiProof checks that proof opens commitment to ys[i] at every xs[i]:
//
//	e([commitment - I(s)]^(-1), [1]) * e([proof], [Z(s)]) = 1
//
// with I interpolating (xs, ys) and Z vanishing on xs. Malformed input (no points,
// ragged or duplicate points, more points than the setup holds) is rejected.
func (me *Setup) ValidMultiProof(commitment, proof bls12381.G1Affine, xs, ys []fr.Element) bool {
	// with Z = 1 the check would only compare proof to commitment
	if len(xs) == 0 {
		return false
	}
	ip, err := LagrangeInterpolate(xs, ys)
	if err != nil {
		return false
	}
	zp := ZeroPoly(xs)
	if ip.Len() > me.Size() || zp.Len() > me.Size() {
		return false
	}
	icommit := commitG1(me.g1, ip.coeffs)
	zcommit := commitG2(me.g2, zp.coeffs)

	var ci bls12381.G1Jac
	ci.FromAffine(&commitment)
	var icj bls12381.G1Jac
	icj.FromAffine(&icommit)
	ci.SubAssign(&icj)
	var ciAff bls12381.G1Affine
	ciAff.FromJacobian(&ci)
	return pairingProductIsOne(ciAff, proof, zcommit)
}

// residual returns commitment - [y]G1.
func residual(commitment bls12381.G1Affine, y fr.Element) bls12381.G1Affine {
	var cy bls12381.G1Jac
	cy.FromAffine(&commitment)
	if !y.IsZero() {
		var yg bls12381.G1Affine
		yg.ScalarMultiplication(&G1_GEN, scalarToBig(&y))
		var ygj bls12381.G1Jac
		cy.SubAssign(ygj.FromAffine(&yg))
	}
	var ret bls12381.G1Affine
	ret.FromJacobian(&cy)
	return ret
}

// pairingProductIsOne reports whether e(-lhs, G2) * e(proof, rhs) is one in GT.
func pairingProductIsOne(lhs, proof bls12381.G1Affine, rhs bls12381.G2Affine) bool {
	var neg bls12381.G1Affine
	neg.Neg(&lhs)
	ml, err := bls12381.MillerLoop([]bls12381.G1Affine{neg}, []bls12381.G2Affine{G2_GEN})
	if err != nil {
		return false
	}
	mr, err := bls12381.MillerLoop([]bls12381.G1Affine{proof}, []bls12381.G2Affine{rhs})
	if err != nil {
		return false
	}
	ml.Mul(&ml, &mr)
	res := bls12381.FinalExponentiation(&ml)
	var one bls12381.GT
	one.SetOne()
	return res.Equal(&one)
}
