package eonkzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/iotaledger/hive.go/lo"
)

// Value is anything accepted where a scalar is expected. Integers are reduced
// mod r, negative ones to their field representative.
type Value interface {
	int | int64 | uint64 | *big.Int | fr.Element
}

// NewScalar converts v into the scalar field. A nil *big.Int is zero.
func NewScalar[T Value](v T) fr.Element {
	var ret fr.Element
	switch val := any(v).(type) {
	case fr.Element:
		ret = val
	case *big.Int:
		if val != nil {
			ret.SetBigInt(val)
		}
	case uint64:
		ret.SetUint64(val)
	case int64:
		ret.SetInt64(val)
	case int:
		ret.SetInt64(int64(val))
	}
	return ret
}

// NewScalars converts every element of vs.
func NewScalars[T Value](vs []T) []fr.Element {
	return lo.Map(vs, NewScalar[T])
}

func scalarToBig(v *fr.Element) *big.Int {
	var b big.Int
	return v.BigInt(&b)
}
