package opening

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"

	"github.com/eon-protocol/eonkzg"
)

func TestOpening_MatchesNative(t *testing.T) {
	if testing.Short() {
		t.Skip("emulated pairing is slow")
	}
	assert := test.NewAssert(t)

	setup, err := eonkzg.SetupParams(1234567, 8)
	assert.NoError(err)
	commitment, err := eonkzg.FromCoeffs(setup, []int{1, 2, 3, 4, 7, 7, 7, 7})
	assert.NoError(err)
	proof := commitment.Open(eonkzg.NewScalar(17))
	assert.True(proof.Verify(setup, commitment.Value()))

	assignment, err := Assign(setup, commitment.Value(), proof)
	assert.NoError(err)
	assert.NoError(test.IsSolved(&Circuit{}, assignment, ecc.BN254.ScalarField()))

	// wrong claimed value
	proof.ClaimedValue.SetUint64(1)
	assert.False(proof.Verify(setup, commitment.Value()))
	bad, err := Assign(setup, commitment.Value(), proof)
	assert.NoError(err)
	assert.Error(test.IsSolved(&Circuit{}, bad, ecc.BN254.ScalarField()))
}
