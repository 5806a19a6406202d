package eonkzg

import (
	"context"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/iotaledger/hive.go/ierrors"
	"golang.org/x/sync/errgroup"
)

// ComputeProofs computes one single-point proof per x, in parallel.
func (me *Commitment) ComputeProofs(ctx context.Context, xs []fr.Element) ([]bls12381.G1Affine, error) {
	proofs := make([]bls12381.G1Affine, len(xs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range xs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			proofs[i] = me.ComputeProof(xs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return proofs, nil
}

// ValidProofs runs ValidProof on every (proofs[i], xs[i], ys[i]) in parallel and
// reports whether all of them hold.
func (me *Setup) ValidProofs(ctx context.Context, commitment bls12381.G1Affine, proofs []bls12381.G1Affine, xs, ys []fr.Element) (bool, error) {
	if len(proofs) != len(xs) || len(xs) != len(ys) {
		return false, ierrors.Wrapf(ErrLengthMismatch, "%d proofs, %d xs, %d ys", len(proofs), len(xs), len(ys))
	}
	valid := make([]bool, len(proofs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range proofs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			valid[i] = me.ValidProof(commitment, proofs[i], xs[i], ys[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}
	for _, v := range valid {
		if !v {
			return false, nil
		}
	}
	return true, nil
}

// ValidProofBatch checks many single-point openings with one pairing product.
// With ρ derived from all inputs, it checks
//
//	e(Σρⁱ(Cᵢ - [yᵢ] + xᵢπᵢ), [1]) = e(Σρⁱπᵢ, [s])
//
// which holds for all i except with negligible probability when any opening is wrong.
func (me *Setup) ValidProofBatch(commitments, proofs []bls12381.G1Affine, xs, ys []fr.Element) bool {
	n := len(commitments)
	if n == 0 || len(proofs) != n || len(xs) != n || len(ys) != n {
		return false
	}
	if n == 1 {
		return me.ValidProof(commitments[0], proofs[0], xs[0], ys[0])
	}
	if me.Size() < 2 {
		return false
	}
	rho := BatchChallenge(commitments, proofs, xs, ys)
	factors := make([]fr.Element, n)
	factors[0].SetOne()
	for i := 1; i < n; i++ {
		factors[i].Mul(&factors[i-1], &rho)
	}

	var foldedEval, tmp fr.Element
	xfactors := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		foldedEval.Add(&foldedEval, tmp.Mul(&factors[i], &ys[i]))
		xfactors[i].Mul(&factors[i], &xs[i])
	}

	var foldedCommitments, foldedPointsProofs, foldedProofs bls12381.G1Affine
	cfg := ecc.MultiExpConfig{}
	if _, err := foldedCommitments.MultiExp(commitments, factors, cfg); err != nil {
		return false
	}
	if _, err := foldedPointsProofs.MultiExp(proofs, xfactors, cfg); err != nil {
		return false
	}
	if _, err := foldedProofs.MultiExp(proofs, factors, cfg); err != nil {
		return false
	}

	var lhs bls12381.G1Jac
	lhs.FromAffine(&foldedCommitments)
	var pj bls12381.G1Jac
	lhs.AddAssign(pj.FromAffine(&foldedPointsProofs))
	var lhsAff bls12381.G1Affine
	lhsAff.FromJacobian(&lhs)
	return pairingProductIsOne(residual(lhsAff, foldedEval), foldedProofs, me.g2[1])
}

// BatchChallenge is the folding factor used by ValidProofBatch: the Poseidon2
// HashSum of CID_BATCH followed by (HashG1(Cᵢ), HashG1(πᵢ), xᵢ, yᵢ) for every i.
func BatchChallenge(commitments, proofs []bls12381.G1Affine, xs, ys []fr.Element) fr.Element {
	transcript := make([]fr.Element, 0, 1+4*len(commitments))
	transcript = append(transcript, CID_BATCH)
	for i := range commitments {
		transcript = append(transcript, HashG1(commitments[i]), HashG1(proofs[i]), xs[i], ys[i])
	}
	return HashSum(transcript...)
}
