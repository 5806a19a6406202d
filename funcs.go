package eonkzg

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"
	"log"
	"math"
	"math/big"
	"os"
	"strings"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/poseidon2"
	"github.com/iotaledger/hive.go/ierrors"
)

var permutation = sync.OnceValue(func() *poseidon2.Permutation {
	return poseidon2.NewPermutationWithSeed(HASH_T, HASH_RF, HASH_RP, HASH_SEED)
})

// DecomposeG1 splits X and Y of val into quotient and remainder mod r.
func DecomposeG1(val bls12381.G1Affine) [2][2]fr.Element {
	var ixq, ixm, iyq, iym big.Int
	var exq, exm, eyq, eym fr.Element
	val.X.BigInt(&ixq)
	val.Y.BigInt(&iyq)
	ixq.DivMod(&ixq, fr.Modulus(), &ixm)
	iyq.DivMod(&iyq, fr.Modulus(), &iym)
	exq.SetBigInt(&ixq)
	exm.SetBigInt(&ixm)
	eyq.SetBigInt(&iyq)
	eym.SetBigInt(&iym)
	return [2][2]fr.Element{{exq, exm}, {eyq, eym}}
}

func HashG1(val bls12381.G1Affine) fr.Element {
	decompose := DecomposeG1(val)
	x := HashCompress(decompose[0][0], decompose[0][1])
	y := HashCompress(decompose[1][0], decompose[1][1])
	return HashCompress(x, y)
}

func HashCompress(x, y fr.Element) fr.Element {
	vars := [2]fr.Element{x, y}
	if err := permutation().Permutation(vars[:]); err != nil {
		log.Panicln(err)
	}
	var ret fr.Element
	ret.Add(&vars[1], &y)
	return ret
}

func HashSum(val ...fr.Element) fr.Element {
	var ret fr.Element
	for _, v := range val {
		ret = HashCompress(ret, v)
	}
	return ret
}

// WriteTo encodes the setup as a big-endian uint32 size followed by the G1 then
// the G2 points in compressed form.
func (me *Setup) WriteTo(w io.Writer) (int64, error) {
	buf, err := sizeHeader(me.Size())
	if err != nil {
		return 0, err
	}
	if n, err := w.Write(buf[:]); err != nil {
		return int64(n), err
	}
	enc := bls12381.NewEncoder(w)
	for i := range me.g1 {
		if err := enc.Encode(&me.g1[i]); err != nil {
			return 4 + enc.BytesWritten(), err
		}
	}
	for i := range me.g2 {
		if err := enc.Encode(&me.g2[i]); err != nil {
			return 4 + enc.BytesWritten(), err
		}
	}
	return 4 + enc.BytesWritten(), nil
}

// ReadFrom decodes a setup written by WriteTo and checks it like NewSetup does.
// The size header only bounds the loop; memory grows with the points actually read.
func (me *Setup) ReadFrom(r io.Reader) (int64, error) {
	buf := [4]byte{}
	if n, err := io.ReadFull(r, buf[:]); err != nil {
		return int64(n), err
	}
	size := int(binary.BigEndian.Uint32(buf[:]))
	var g1 []bls12381.G1Affine
	var g2 []bls12381.G2Affine
	dec := bls12381.NewDecoder(r)
	for i := 0; i < size; i++ {
		var p bls12381.G1Affine
		if err := dec.Decode(&p); err != nil {
			return 4 + dec.BytesRead(), ierrors.Wrapf(err, "g1 point %d of %d", i, size)
		}
		g1 = append(g1, p)
	}
	for i := 0; i < size; i++ {
		var p bls12381.G2Affine
		if err := dec.Decode(&p); err != nil {
			return 4 + dec.BytesRead(), ierrors.Wrapf(err, "g2 point %d of %d", i, size)
		}
		g2 = append(g2, p)
	}
	setup, err := NewSetup(g1, g2)
	if err != nil {
		return 4 + dec.BytesRead(), err
	}
	*me = *setup
	return 4 + dec.BytesRead(), nil
}

func sizeHeader(size int) ([4]byte, error) {
	buf := [4]byte{}
	if size < 0 || uint64(size) > math.MaxUint32 {
		return buf, ierrors.Wrapf(ErrInvalidSetup, "size %d does not fit the header", size)
	}
	binary.BigEndian.PutUint32(buf[:], uint32(size))
	return buf, nil
}

// SetupDigest is the hex sha256 of the encoded setup.
func SetupDigest(setup *Setup) (string, error) {
	var buf bytes.Buffer
	if _, err := setup.WriteTo(&buf); err != nil {
		return "", err
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

// WriteSetupFile writes the setup to path+SETUP_FILE_EXT and its digest to
// path+SETUP_DIGEST_EXT.
func WriteSetupFile(path string, setup *Setup) error {
	var buf bytes.Buffer
	if _, err := setup.WriteTo(&buf); err != nil {
		return err
	}
	sum := sha256.Sum256(buf.Bytes())
	if err := os.WriteFile(path+SETUP_FILE_EXT, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.WriteFile(path+SETUP_DIGEST_EXT, []byte(hex.EncodeToString(sum[:])+"\n"), 0o644)
}

// ReadSetupFile reads a setup written by WriteSetupFile, refusing it when the
// digest file does not match.
func ReadSetupFile(path string) (*Setup, error) {
	bytesetup, err := os.ReadFile(path + SETUP_FILE_EXT)
	if err != nil {
		return nil, err
	}
	bytesum, err := os.ReadFile(path + SETUP_DIGEST_EXT)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(bytesetup)
	if hex.EncodeToString(sum[:]) != strings.TrimSpace(string(bytesum)) {
		return nil, ierrors.Wrapf(ErrInvalidSetup, "digest mismatch for %s", path+SETUP_FILE_EXT)
	}
	var setup Setup
	if _, err := setup.ReadFrom(bytes.NewReader(bytesetup)); err != nil {
		return nil, err
	}
	return &setup, nil
}
