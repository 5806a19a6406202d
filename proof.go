package eonkzg

import (
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// OpeningProof is a single-point proof with the claim it proves: the committed
// polynomial evaluates to ClaimedValue at Point.
type OpeningProof struct {
	H            bls12381.G1Affine
	Point        fr.Element
	ClaimedValue fr.Element
}

func (me *OpeningProof) Verify(setup *Setup, commitment bls12381.G1Affine) bool {
	return setup.ValidProof(commitment, me.H, me.Point, me.ClaimedValue)
}

func (me *OpeningProof) ToGnarkOpeningProof() kzg.OpeningProof {
	return kzg.OpeningProof{
		H:            me.H,
		ClaimedValue: me.ClaimedValue,
	}
}

func (me *OpeningProof) FromGnarkOpeningProof(proof kzg.OpeningProof, point fr.Element) {
	me.H = proof.H
	me.ClaimedValue = proof.ClaimedValue
	me.Point = point
}

func (me *OpeningProof) WriteTo(w io.Writer) (int64, error) {
	enc := bls12381.NewEncoder(w)
	if err := enc.Encode(&me.H); err != nil {
		return enc.BytesWritten(), err
	}
	if err := enc.Encode(&me.Point); err != nil {
		return enc.BytesWritten(), err
	}
	if err := enc.Encode(&me.ClaimedValue); err != nil {
		return enc.BytesWritten(), err
	}
	return enc.BytesWritten(), nil
}

func (me *OpeningProof) ReadFrom(r io.Reader) (int64, error) {
	dec := bls12381.NewDecoder(r)
	if err := dec.Decode(&me.H); err != nil {
		return dec.BytesRead(), err
	}
	if err := dec.Decode(&me.Point); err != nil {
		return dec.BytesRead(), err
	}
	if err := dec.Decode(&me.ClaimedValue); err != nil {
		return dec.BytesRead(), err
	}
	return dec.BytesRead(), nil
}
