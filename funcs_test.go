package eonkzg

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup_Encoding(t *testing.T) {
	setup, err := SetupParams(11, 8)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := setup.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	// size prefix, then compressed points
	require.Equal(t, 4+8*48+8*96, buf.Len())

	var decoded Setup
	m, err := decoded.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, n, m)
	require.True(t, decoded.Equal(setup))

	var truncated Setup
	_, err = truncated.ReadFrom(bytes.NewReader(buf.Bytes()[:buf.Len()-10]))
	require.Error(t, err)
}

func TestSetup_ReadFromHugeHeader(t *testing.T) {
	for _, header := range [][]byte{
		{0x00, 0x10, 0x00, 0x00},
		{0xff, 0xff, 0xff, 0xff},
	} {
		var before, after runtime.MemStats
		runtime.GC()
		runtime.ReadMemStats(&before)

		var s Setup
		_, err := s.ReadFrom(bytes.NewReader(header))
		require.Error(t, err)

		runtime.ReadMemStats(&after)
		require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20), "header %x", header)
		require.Equal(t, 0, s.Size())
	}

	// header claims more points than the body holds
	setup, err := SetupParams(11, 2)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = setup.WriteTo(&buf)
	require.NoError(t, err)
	body := buf.Bytes()
	body[3] = 3
	var s Setup
	_, err = s.ReadFrom(bytes.NewReader(body))
	require.Error(t, err)
}

func TestSizeHeader(t *testing.T) {
	buf, err := sizeHeader(math.MaxUint32)
	require.NoError(t, err)
	require.Equal(t, [4]byte{0xff, 0xff, 0xff, 0xff}, buf)

	_, err = sizeHeader(math.MaxUint32 + 1)
	require.ErrorIs(t, err, ErrInvalidSetup)
	_, err = sizeHeader(-1)
	require.ErrorIs(t, err, ErrInvalidSetup)
}

func TestSetupFile(t *testing.T) {
	setup, err := SetupParams(11, 8)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "test")
	require.NoError(t, WriteSetupFile(path, setup))

	read, err := ReadSetupFile(path)
	require.NoError(t, err)
	require.True(t, read.Equal(setup))

	digest, err := SetupDigest(setup)
	require.NoError(t, err)
	onDisk, err := os.ReadFile(path + SETUP_DIGEST_EXT)
	require.NoError(t, err)
	require.Equal(t, digest+"\n", string(onDisk))

	other, err := SetupParams(12, 8)
	require.NoError(t, err)
	otherDigest, err := SetupDigest(other)
	require.NoError(t, err)
	require.NotEqual(t, digest, otherDigest)
	require.NoError(t, os.WriteFile(path+SETUP_DIGEST_EXT, []byte(otherDigest+"\n"), 0o644))
	_, err = ReadSetupFile(path)
	require.ErrorIs(t, err, ErrInvalidSetup)

	_, err = ReadSetupFile(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpeningProof_Encoding(t *testing.T) {
	setup, commitment := fixture(t)
	proof := commitment.Open(NewScalar(23))

	var buf bytes.Buffer
	_, err := proof.WriteTo(&buf)
	require.NoError(t, err)

	var decoded OpeningProof
	_, err = decoded.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, proof, decoded)
	require.True(t, decoded.Verify(setup, commitment.Value()))
}

func TestHashG1(t *testing.T) {
	setup, err := SetupParams(11, 2)
	require.NoError(t, err)
	g1 := setup.G1Points()
	require.Equal(t, HashG1(g1[0]), HashG1(G1_GEN))
	require.NotEqual(t, HashG1(g1[0]), HashG1(g1[1]))
	require.NotEqual(t, HashSum(NewScalar(1), NewScalar(2)), HashSum(NewScalar(2), NewScalar(1)))
}
