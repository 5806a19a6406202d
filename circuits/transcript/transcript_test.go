package transcript

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/poseidon2"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"

	"github.com/eon-protocol/eonkzg"
)

type permutationCircuit struct {
	Input  [eonkzg.HASH_T]frontend.Variable
	Output [eonkzg.HASH_T]frontend.Variable `gnark:",public"`
}

func (me *permutationCircuit) Define(api frontend.API) error {
	state := me.Input
	if err := NewPoseidon2(api).Permutation(state[:]); err != nil {
		return err
	}
	for i := range state {
		api.AssertIsEqual(me.Output[i], state[i])
	}
	return nil
}

type challengeCircuit struct {
	Openings  []Opening
	Challenge frontend.Variable `gnark:",public"`
}

func (me *challengeCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(me.Challenge, NewPoseidon2(api).BatchChallenge(me.Openings))
	return nil
}

func TestPoseidon2_MatchesNative(t *testing.T) {
	assert := test.NewAssert(t)
	native := poseidon2.NewPermutationWithSeed(eonkzg.HASH_T, eonkzg.HASH_RF, eonkzg.HASH_RP, eonkzg.HASH_SEED)
	for it := 0; it < 4; it++ {
		var in, out [eonkzg.HASH_T]fr.Element
		for i := range in {
			in[i].SetRandom()
		}
		out = in
		if err := native.Permutation(out[:]); err != nil {
			t.Fatalf("native permutation failed: %v", err)
		}
		var witness permutationCircuit
		for i := range in {
			witness.Input[i] = in[i].String()
			witness.Output[i] = out[i].String()
		}
		assert.NoError(test.IsSolved(&permutationCircuit{}, &witness, ecc.BLS12_381.ScalarField()))
	}
}

func TestBatchChallenge_MatchesNative(t *testing.T) {
	assert := test.NewAssert(t)

	setup, err := eonkzg.SetupParams(11, 8)
	assert.NoError(err)
	const n = 3
	commitments := make([]bls12381.G1Affine, n)
	proofs := make([]bls12381.G1Affine, n)
	xs := eonkzg.NewScalars([]int{5, 6, 7})
	ys := make([]fr.Element, n)
	witness := challengeCircuit{Openings: make([]Opening, n)}
	for i := 0; i < n; i++ {
		c, err := eonkzg.FromCoeffs(setup, []int{i + 1, 2, 3, 4})
		assert.NoError(err)
		commitments[i] = c.Value()
		proofs[i] = c.ComputeProof(xs[i])
		ys[i] = c.Polynomial().EvalAt(xs[i])
		witness.Openings[i] = ValueOfOpening(commitments[i], proofs[i], xs[i], ys[i])
	}
	assert.True(setup.ValidProofBatch(commitments, proofs, xs, ys))
	challenge := eonkzg.BatchChallenge(commitments, proofs, xs, ys)
	witness.Challenge = challenge.String()

	circuit := challengeCircuit{Openings: make([]Opening, n)}
	assert.NoError(test.IsSolved(&circuit, &witness, ecc.BLS12_381.ScalarField()))

	witness.Openings[1].Value = "1"
	assert.Error(test.IsSolved(&circuit, &witness, ecc.BLS12_381.ScalarField()))
}
