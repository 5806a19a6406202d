package transcript

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/eon-protocol/eonkzg"
)

// G1Decomposed is a G1 point as X = XQ·r + XM, Y = YQ·r + YM. The decomposition
// is a witness and is not range checked here.
type G1Decomposed struct {
	XQ frontend.Variable
	XM frontend.Variable
	YQ frontend.Variable
	YM frontend.Variable
}

func ValueOfG1(p bls12381.G1Affine) G1Decomposed {
	d := eonkzg.DecomposeG1(p)
	return G1Decomposed{
		XQ: d[0][0].String(),
		XM: d[0][1].String(),
		YQ: d[1][0].String(),
		YM: d[1][1].String(),
	}
}

// Opening is one (commitment, proof, point, value) entry of a batch.
type Opening struct {
	Commitment G1Decomposed
	Proof      G1Decomposed
	Point      frontend.Variable
	Value      frontend.Variable
}

func ValueOfOpening(commitment, proof bls12381.G1Affine, point, value fr.Element) Opening {
	return Opening{
		Commitment: ValueOfG1(commitment),
		Proof:      ValueOfG1(proof),
		Point:      point.String(),
		Value:      value.String(),
	}
}

// BatchChallenge matches eonkzg.BatchChallenge.
func (me *Poseidon2) BatchChallenge(openings []Opening) frontend.Variable {
	transcript := make([]frontend.Variable, 0, 1+4*len(openings))
	transcript = append(transcript, eonkzg.CID_BATCH.String())
	for i := range openings {
		transcript = append(transcript,
			me.HashG1(openings[i].Commitment),
			me.HashG1(openings[i].Proof),
			openings[i].Point,
			openings[i].Value,
		)
	}
	return me.HashSum(transcript...)
}
