package eonkzg

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/polynomial"
	"github.com/stretchr/testify/require"
)

func randScalars(t *testing.T, n int) []fr.Element {
	t.Helper()
	ret := make([]fr.Element, n)
	for i := range ret {
		_, err := ret[i].SetRandom()
		require.NoError(t, err)
	}
	return ret
}

func TestPolynomial_Mul(t *testing.T) {
	a := NewPolynomial([]int{1, 2, 3})
	b := NewPolynomial([]int{-4, 5, -6})
	require.True(t, a.Mul(b).Equal(NewPolynomial([]int{-4, -3, -8, 3, -18})))
	require.Equal(t, 0, a.Mul(Polynomial{}).Len())

	p := NewPolynomial(randScalars(t, 7))
	q := NewPolynomial(randScalars(t, 5))
	x := randScalars(t, 1)[0]
	var want fr.Element
	pv, qv := p.EvalAt(x), q.EvalAt(x)
	want.Mul(&pv, &qv)
	require.Equal(t, want, p.Mul(q).EvalAt(x))
}

func TestPolynomial_AddSub(t *testing.T) {
	a := NewPolynomial([]int{1, 2, 3})
	b := NewPolynomial([]int{10, 20})
	require.True(t, a.Add(b).Equal(NewPolynomial([]int{11, 22, 3})))
	require.True(t, b.Sub(a).Equal(NewPolynomial([]int{9, 18, -3})))
	require.True(t, a.Sub(a).IsZero())
}

func TestPolynomial_EvalAt(t *testing.T) {
	require.Equal(t, fr.Element{}, Polynomial{}.EvalAt(NewScalar(5)))
	require.Equal(t, NewScalar(34), NewPolynomial([]int{1, 2, 3}).EvalAt(NewScalar(3)))

	coeffs := randScalars(t, 33)
	p := NewPolynomial(coeffs)
	oracle := polynomial.Polynomial(coeffs)
	for _, x := range randScalars(t, 8) {
		require.Equal(t, oracle.Eval(&x), p.EvalAt(x))
	}
}

func TestZeroPoly(t *testing.T) {
	xs := NewScalars([]int{1, 2, 3})
	z := ZeroPoly(xs)
	require.True(t, z.Equal(NewPolynomial([]int{-6, 11, -6, 1})))
	for _, x := range xs {
		require.Equal(t, fr.Element{}, z.EvalAt(x))
	}
	require.Equal(t, NewScalar(6), z.EvalAt(NewScalar(4)))
	require.True(t, ZeroPoly(nil).Equal(NewPolynomial([]int{1})))
}

func TestLagrangeInterpolate(t *testing.T) {
	xs := randScalars(t, 100)
	ys := randScalars(t, 100)
	p, err := LagrangeInterpolate(xs, ys)
	require.NoError(t, err)
	require.Equal(t, 100, p.Len())
	one := fr.One()
	for i := range xs {
		v := p.EvalAt(xs[i])
		require.Equal(t, ys[i], v)
		var shifted fr.Element
		shifted.Add(&ys[i], &one)
		require.NotEqual(t, shifted, v)
	}

	p, err = LagrangeInterpolate(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, p.Len())
}

func TestLagrangeInterpolate_Errors(t *testing.T) {
	_, err := LagrangeInterpolate(NewScalars([]int{1, 2, 1}), NewScalars([]int{4, 5, 6}))
	require.ErrorIs(t, err, ErrDivisionUndefined)

	_, err = LagrangeInterpolate(NewScalars([]int{1, 2}), NewScalars([]int{4}))
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestPolynomial_DivMod(t *testing.T) {
	q := NewPolynomial(randScalars(t, 9))
	d := NewPolynomial(randScalars(t, 4))
	r := NewPolynomial(randScalars(t, 3))
	p := q.Mul(d).Add(r)
	before := p.Coeffs()

	gotQ, gotR, err := p.DivMod(d)
	require.NoError(t, err)
	require.True(t, gotQ.Equal(q))
	require.True(t, gotR.Equal(r))
	require.Equal(t, before, p.Coeffs(), "dividend must not be mutated")

	quot, err := q.Mul(d).PolyLongDiv(d.Coeffs())
	require.NoError(t, err)
	require.True(t, NewPolynomial(quot).Equal(q))

	// divisor of higher degree than the dividend
	gotQ, gotR, err = d.DivMod(q)
	require.NoError(t, err)
	require.Equal(t, 0, gotQ.Len())
	require.True(t, gotR.Equal(d))
}

func TestPolynomial_DivModByZero(t *testing.T) {
	p := NewPolynomial([]int{1, 2, 3})
	_, _, err := p.DivMod(NewPolynomial([]int{1, 0}))
	require.ErrorIs(t, err, ErrDivisionUndefined)
	_, err = p.PolyLongDiv(nil)
	require.ErrorIs(t, err, ErrDivisionUndefined)
}
