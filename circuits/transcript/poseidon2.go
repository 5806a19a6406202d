// Package transcript recomputes eonkzg's Poseidon2 transcript inside gnark
// circuits whose native field is the BLS12-381 scalar field.
package transcript

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/poseidon2"
	"github.com/consensys/gnark/frontend"

	"github.com/eon-protocol/eonkzg"
)

var ErrInvalidSizeBuffer = errors.New("the size of the input should match the size of the hash buffer")

// Poseidon2 is the in-circuit permutation with eonkzg's HASH_* parameters.
type Poseidon2 struct {
	api             frontend.API
	width           int
	degreeSBox      int
	nbFullRounds    int
	nbPartialRounds int
	// [round][lane]
	roundKeys [][]big.Int
}

func NewPoseidon2(api frontend.API) *Poseidon2 {
	params := poseidon2.NewParametersWithSeed(eonkzg.HASH_T, eonkzg.HASH_RF, eonkzg.HASH_RP, eonkzg.HASH_SEED)
	roundKeys := make([][]big.Int, len(params.RoundKeys))
	for i := range roundKeys {
		roundKeys[i] = make([]big.Int, len(params.RoundKeys[i]))
		for j := range roundKeys[i] {
			params.RoundKeys[i][j].BigInt(&roundKeys[i][j])
		}
	}
	return &Poseidon2{
		api:             api,
		width:           eonkzg.HASH_T,
		degreeSBox:      poseidon2.DegreeSBox(),
		nbFullRounds:    eonkzg.HASH_RF,
		nbPartialRounds: eonkzg.HASH_RP,
		roundKeys:       roundKeys,
	}
}

func (me *Poseidon2) sBox(index int, input []frontend.Variable) {
	tmp := input[index]
	switch me.degreeSBox {
	case 3:
		input[index] = me.api.Mul(input[index], input[index])
		input[index] = me.api.Mul(tmp, input[index])
	case 5:
		input[index] = me.api.Mul(input[index], input[index])
		input[index] = me.api.Mul(input[index], input[index])
		input[index] = me.api.Mul(input[index], tmp)
	case 7:
		input[index] = me.api.Mul(input[index], input[index])
		input[index] = me.api.Mul(input[index], tmp)
		input[index] = me.api.Mul(input[index], input[index])
		input[index] = me.api.Mul(input[index], tmp)
	default:
		panic("unsupported sBox degree")
	}
}

// matMulExternalInPlace is the external matrix for t=2, circ(2, 1).
func (me *Poseidon2) matMulExternalInPlace(input []frontend.Variable) {
	tmp := me.api.Add(input[0], input[1])
	input[0] = me.api.Add(tmp, input[0])
	input[1] = me.api.Add(tmp, input[1])
}

// matMulInternalInPlace is the internal matrix for t=2, [[2, 1], [1, 3]].
func (me *Poseidon2) matMulInternalInPlace(input []frontend.Variable) {
	sum := me.api.Add(input[0], input[1])
	input[0] = me.api.Add(input[0], sum)
	input[1] = me.api.Mul(2, input[1])
	input[1] = me.api.Add(input[1], sum)
}

func (me *Poseidon2) addRoundKeyInPlace(round int, input []frontend.Variable) {
	for i := range me.roundKeys[round] {
		input[i] = me.api.Add(input[i], me.roundKeys[round][i])
	}
}

// Permutation applies the permutation in place.
func (me *Poseidon2) Permutation(input []frontend.Variable) error {
	if len(input) != me.width {
		return ErrInvalidSizeBuffer
	}
	me.matMulExternalInPlace(input)

	rf := me.nbFullRounds / 2
	for i := 0; i < rf; i++ {
		me.addRoundKeyInPlace(i, input)
		for j := 0; j < me.width; j++ {
			me.sBox(j, input)
		}
		me.matMulExternalInPlace(input)
	}
	// partial rounds only touch lane 0
	for i := rf; i < rf+me.nbPartialRounds; i++ {
		me.addRoundKeyInPlace(i, input)
		me.sBox(0, input)
		me.matMulInternalInPlace(input)
	}
	for i := rf + me.nbPartialRounds; i < me.nbFullRounds+me.nbPartialRounds; i++ {
		me.addRoundKeyInPlace(i, input)
		for j := 0; j < me.width; j++ {
			me.sBox(j, input)
		}
		me.matMulExternalInPlace(input)
	}
	return nil
}

// HashCompress matches eonkzg.HashCompress: perm([x, y])[1] + y.
func (me *Poseidon2) HashCompress(x, y frontend.Variable) frontend.Variable {
	vars := [2]frontend.Variable{x, y}
	if err := me.Permutation(vars[:]); err != nil {
		panic(err)
	}
	return me.api.Add(vars[1], y)
}

// HashSum matches eonkzg.HashSum.
func (me *Poseidon2) HashSum(vals ...frontend.Variable) frontend.Variable {
	var acc frontend.Variable = 0
	for i := range vals {
		acc = me.HashCompress(acc, vals[i])
	}
	return acc
}

// HashG1 matches eonkzg.HashG1 on a point given in decomposed form.
func (me *Poseidon2) HashG1(g G1Decomposed) frontend.Variable {
	x := me.HashCompress(g.XQ, g.XM)
	y := me.HashCompress(g.YQ, g.YM)
	return me.HashCompress(x, y)
}
