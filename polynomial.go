package eonkzg

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// Polynomial over fr in coefficient form, coeffs[i] is the coefficient of X^i.
// Trailing zero coefficients are kept. All operations return a new value.
type Polynomial struct {
	coeffs []fr.Element
}

func NewPolynomial[T Value](coeffs []T) Polynomial {
	return Polynomial{coeffs: NewScalars(coeffs)}
}

// Coeffs returns a copy of the coefficients.
func (me Polynomial) Coeffs() []fr.Element {
	return lo.CopySlice(me.coeffs)
}

func (me Polynomial) Len() int {
	return len(me.coeffs)
}

func (me Polynomial) Equal(other Polynomial) bool {
	return lo.Equal(me.coeffs, other.coeffs)
}

// EvalAt evaluates the polynomial at x with Horner's method.
func (me Polynomial) EvalAt(x fr.Element) fr.Element {
	n := len(me.coeffs)
	if n == 0 {
		return fr.Element{}
	}
	ret := me.coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		ret.Mul(&ret, &x).Add(&ret, &me.coeffs[i])
	}
	return ret
}

func (me Polynomial) Add(other Polynomial) Polynomial {
	return Polynomial{coeffs: zipPadded(me.coeffs, other.coeffs, func(z, a, b *fr.Element) { z.Add(a, b) })}
}

func (me Polynomial) Sub(other Polynomial) Polynomial {
	return Polynomial{coeffs: zipPadded(me.coeffs, other.coeffs, func(z, a, b *fr.Element) { z.Sub(a, b) })}
}

// Mul returns the product, of length len(a)+len(b)-1.
func (me Polynomial) Mul(other Polynomial) Polynomial {
	if len(me.coeffs) == 0 || len(other.coeffs) == 0 {
		return Polynomial{coeffs: []fr.Element{}}
	}
	ret := make([]fr.Element, len(me.coeffs)+len(other.coeffs)-1)
	var tmp fr.Element
	for i := range me.coeffs {
		for j := range other.coeffs {
			tmp.Mul(&me.coeffs[i], &other.coeffs[j])
			ret[i+j].Add(&ret[i+j], &tmp)
		}
	}
	return Polynomial{coeffs: ret}
}

// PolyLongDiv divides the polynomial by divisor (coefficient form, highest index
// is the highest degree) and returns the quotient. The remainder is dropped: the
// caller guarantees that divisor divides the polynomial exactly.
func (me Polynomial) PolyLongDiv(divisor []fr.Element) ([]fr.Element, error) {
	q, _, err := longDiv(me.coeffs, divisor)
	return q, err
}

// DivMod is PolyLongDiv that also returns the remainder.
func (me Polynomial) DivMod(divisor Polynomial) (Polynomial, Polynomial, error) {
	q, r, err := longDiv(me.coeffs, divisor.coeffs)
	if err != nil {
		return Polynomial{}, Polynomial{}, err
	}
	return Polynomial{coeffs: q}, Polynomial{coeffs: r}, nil
}

func (me Polynomial) IsZero() bool {
	for i := range me.coeffs {
		if !me.coeffs[i].IsZero() {
			return false
		}
	}
	return true
}

// LagrangeInterpolate returns the polynomial of degree < len(xs) through the
// points (xs[i], ys[i]). xs must be pairwise distinct.
func LagrangeInterpolate(xs, ys []fr.Element) (Polynomial, error) {
	if len(xs) != len(ys) {
		return Polynomial{}, ierrors.Wrapf(ErrLengthMismatch, "interpolate %d xs, %d ys", len(xs), len(ys))
	}
	n := len(xs)
	coeffs := make([]fr.Element, n)
	term := make([]fr.Element, n)
	var prod, tmp, negx fr.Element
	for i := 0; i < n; i++ {
		prod.SetOne()
		for j := 0; j < n; j++ {
			if i != j {
				prod.Mul(&prod, tmp.Sub(&xs[i], &xs[j]))
			}
		}
		if prod.IsZero() {
			return Polynomial{}, ierrors.Wrapf(ErrDivisionUndefined, "duplicate interpolation point %s", xs[i].String())
		}
		// y_i / Π(x_i - x_j), then multiplied by each (X - x_j) in place
		for k := range term {
			term[k].SetZero()
		}
		term[0].Div(&ys[i], &prod)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			negx.Neg(&xs[j])
			for k := n - 1; k >= 1; k-- {
				term[k].Add(&term[k], &term[k-1])
				term[k-1].Mul(&term[k-1], &negx)
			}
		}
		for k := range coeffs {
			coeffs[k].Add(&coeffs[k], &term[k])
		}
	}
	return Polynomial{coeffs: coeffs}, nil
}

// ZeroPoly returns the vanishing polynomial (X - xs[0])(X - xs[1])...
func ZeroPoly(xs []fr.Element) Polynomial {
	ret := Polynomial{coeffs: []fr.Element{fr.One()}}
	for i := range xs {
		var factor Polynomial
		factor.coeffs = make([]fr.Element, 2)
		factor.coeffs[0].Neg(&xs[i])
		factor.coeffs[1].SetOne()
		ret = ret.Mul(factor)
	}
	return ret
}

func zipPadded(a, b []fr.Element, op func(z, a, b *fr.Element)) []fr.Element {
	var zero fr.Element
	ret := make([]fr.Element, max(len(a), len(b)))
	for i := range ret {
		x, y := &zero, &zero
		if i < len(a) {
			x = &a[i]
		}
		if i < len(b) {
			y = &b[i]
		}
		op(&ret[i], x, y)
	}
	return ret
}

func longDiv(dividend, divisor []fr.Element) ([]fr.Element, []fr.Element, error) {
	bpos := len(divisor) - 1
	if bpos < 0 || divisor[bpos].IsZero() {
		return nil, nil, ierrors.Wrap(ErrDivisionUndefined, "divisor has zero leading coefficient")
	}
	a := lo.CopySlice(dividend)
	apos := len(a) - 1
	diff := apos - bpos
	if diff < 0 {
		return []fr.Element{}, a, nil
	}
	var inv, quot, tmp fr.Element
	inv.Inverse(&divisor[bpos])
	q := make([]fr.Element, diff+1)
	for ; diff >= 0; diff-- {
		quot.Mul(&a[apos], &inv)
		for i := bpos; i >= 0; i-- {
			tmp.Mul(&quot, &divisor[i])
			a[diff+i].Sub(&a[diff+i], &tmp)
		}
		q[diff] = quot
		apos--
	}
	return q, a[:bpos], nil
}
