//go:build icicle

package gpu

import (
	"errors"
	"fmt"
	"log"
	"sync"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	icicle_core "github.com/ingonyama-zk/icicle-gnark/v3/wrappers/golang/core"
	icicle_bls12_381 "github.com/ingonyama-zk/icicle-gnark/v3/wrappers/golang/curves/bls12381"
	icicle_msm "github.com/ingonyama-zk/icicle-gnark/v3/wrappers/golang/curves/bls12381/msm"
	icicle_runtime "github.com/ingonyama-zk/icicle-gnark/v3/wrappers/golang/runtime"
)

const HasIcicle = true

var device = sync.OnceValues(func() (*icicle_runtime.Device, error) {
	if st := icicle_runtime.LoadBackendFromEnvOrDefault(); st != icicle_runtime.Success {
		return nil, fmt.Errorf("load icicle backend: %s", st.AsString())
	}
	dev := icicle_runtime.CreateDevice("CUDA", 0)
	log.Println("icicle backend loaded; using CUDA:0")
	return &dev, nil
})

func projectiveToAffine(p icicle_bls12_381.Projective) curve.G1Affine {
	bx := p.X.ToBytesLittleEndian()
	by := p.Y.ToBytesLittleEndian()
	bz := p.Z.ToBytesLittleEndian()

	var ax, ay, az fp.Element
	ax, _ = fp.LittleEndian.Element((*[fp.Bytes]byte)(bx))
	ay, _ = fp.LittleEndian.Element((*[fp.Bytes]byte)(by))
	az, _ = fp.LittleEndian.Element((*[fp.Bytes]byte)(bz))

	var zInv fp.Element
	zInv.Inverse(&az)
	ax.Mul(&ax, &zInv)
	ay.Mul(&ay, &zInv)

	return curve.G1Affine{X: ax, Y: ay}
}

// MultiExpG1 computes Σ scalars[i]·bases[i] on the GPU. Bases are copied to the
// device and taken out of Montgomery form for every call; scalars stay in it.
func MultiExpG1(bases []curve.G1Affine, scalars []fr.Element) (curve.G1Affine, error) {
	if len(bases) != len(scalars) {
		return curve.G1Affine{}, errors.New("bases and scalars length mismatch")
	}
	dev, err := device()
	if err != nil {
		return curve.G1Affine{}, err
	}
	var res curve.G1Affine
	var msmErr error
	done := make(chan struct{})
	icicle_runtime.RunOnDevice(dev, func(args ...any) {
		defer close(done)

		host := (icicle_core.HostSlice[curve.G1Affine])(bases)
		var basesDev icicle_core.DeviceSlice
		host.CopyToDevice(&basesDev, true)
		defer basesDev.Free()
		if st := icicle_bls12_381.AffineFromMontgomery(basesDev); st != icicle_runtime.Success {
			msmErr = fmt.Errorf("AffineFromMontgomery: %s", st.AsString())
			return
		}

		hostScalars := icicle_core.HostSliceFromElements(scalars)
		var scalarsDev icicle_core.DeviceSlice
		hostScalars.CopyToDevice(&scalarsDev, true)
		defer scalarsDev.Free()

		cfg := icicle_msm.GetDefaultMSMConfig()
		cfg.AreScalarsMontgomeryForm = true
		cfg.AreBasesMontgomeryForm = false
		cfg.PrecomputeFactor = 1

		out := make(icicle_core.HostSlice[icicle_bls12_381.Projective], 1)
		if st := icicle_msm.Msm(scalarsDev, basesDev, &cfg, out); st != icicle_runtime.Success {
			msmErr = fmt.Errorf("icicle msm: %s", st.AsString())
			return
		}
		res = projectiveToAffine(out[0])
	})
	<-done
	return res, msmErr
}
