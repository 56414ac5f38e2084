package segy_test

import (
	"path/filepath"
	"testing"

	segy "github.com/scigolib/segy"
	"github.com/stretchr/testify/require"
)

func TestWithMmapSelectsMmapSubstrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	plain, err := segy.Open(path, "rb")
	require.NoError(t, err)
	defer func() { _ = plain.Close() }()

	mapped, err := segy.Open(path, "rb", segy.WithMmap())
	require.NoError(t, err)
	defer func() { _ = mapped.Close() }()

	_, err = mapped.AnalyzeGeometry(testInlineField, testCrosslineField)
	require.NoError(t, err)

	// Only the mmap substrate rejects AppendTrace with ErrAppendUnderMmap.
	err = mapped.AppendTrace(make([]byte, 240), make([]float32, testSamplesPerTrace))
	require.ErrorIs(t, err, segy.ErrAppendUnderMmap)
}

func TestNoOptionsDefaultsToSequential(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	f, err := segy.Open(path, "r+b")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	header := make([]byte, 240)
	samples := make([]float32, testSamplesPerTrace)
	require.NoError(t, f.AppendTrace(header, samples))
	require.Equal(t, int64(26), f.TraceCount())
}
