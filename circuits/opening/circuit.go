// Package opening verifies a single-point eonkzg opening inside a gnark circuit,
// with BLS12-381 emulated over the circuit's native field.
package opening

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/emulated/sw_bls12381"
	"github.com/consensys/gnark/std/commitments/kzg"
	"github.com/consensys/gnark/std/math/emulated"

	"github.com/eon-protocol/eonkzg"
)

type Circuit struct {
	VerifyingKey kzg.VerifyingKey[sw_bls12381.G1Affine, sw_bls12381.G2Affine]
	Commitment   kzg.Commitment[sw_bls12381.G1Affine]                          `gnark:",public"`
	Point        emulated.Element[sw_bls12381.ScalarField]                     `gnark:",public"`
	Proof        kzg.OpeningProof[sw_bls12381.ScalarField, sw_bls12381.G1Affine]
}

func (me *Circuit) Define(api frontend.API) error {
	verifier, err := kzg.NewVerifier[sw_bls12381.ScalarField, sw_bls12381.G1Affine, sw_bls12381.G2Affine, sw_bls12381.GTEl](api)
	if err != nil {
		return fmt.Errorf("new kzg verifier: %w", err)
	}
	if err := verifier.CheckOpeningProof(me.Commitment, me.Proof, me.Point, me.VerifyingKey); err != nil {
		return fmt.Errorf("check opening proof: %w", err)
	}
	return nil
}

// Assign builds the witness for proof opening commitment under setup.
func Assign(setup *eonkzg.Setup, commitment bls12381.G1Affine, proof eonkzg.OpeningProof) (*Circuit, error) {
	srs, err := setup.SRS()
	if err != nil {
		return nil, err
	}
	vk, err := kzg.ValueOfVerifyingKey[sw_bls12381.G1Affine, sw_bls12381.G2Affine](srs.Vk)
	if err != nil {
		return nil, fmt.Errorf("verifying key: %w", err)
	}
	cmt, err := kzg.ValueOfCommitment[sw_bls12381.G1Affine](commitment)
	if err != nil {
		return nil, fmt.Errorf("commitment: %w", err)
	}
	op, err := kzg.ValueOfOpeningProof[sw_bls12381.ScalarField, sw_bls12381.G1Affine](proof.ToGnarkOpeningProof())
	if err != nil {
		return nil, fmt.Errorf("opening proof: %w", err)
	}
	return &Circuit{
		VerifyingKey: vk,
		Commitment:   cmt,
		Point:        emulated.ValueOf[sw_bls12381.ScalarField](proof.Point.String()),
		Proof:        op,
	}, nil
}
