package segy_test

import (
	"path/filepath"
	"testing"

	segy "github.com/scigolib/segy"
	"github.com/stretchr/testify/require"
)

func TestWriteTraceBodyRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	f, err := segy.Open(path, "r+b")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	samples := make([]float32, testSamplesPerTrace)
	for i := range samples {
		samples[i] = float32(i) * 0.5
	}
	require.NoError(t, f.WriteTraceBody(3, samples))

	got, err := f.ReadTraceBody(3)
	require.NoError(t, err)
	for i := range samples {
		require.InDelta(t, samples[i], got[i], 1e-4)
	}
}

func TestWriteTraceBodyWrongCountFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	f, err := segy.Open(path, "r+b")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	before, err := f.ReadTraceBody(0)
	require.NoError(t, err)

	err = f.WriteTraceBody(0, make([]float32, testSamplesPerTrace-1))
	require.Error(t, err)
	require.Equal(t, segy.InvalidArgs, segy.CodeOf(err))

	after, err := f.ReadTraceBody(0)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestAppendTraceRejectedUnderMmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	f, err := segy.Open(path, "r+b", segy.WithMmap())
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	header := make([]byte, 240)
	samples := make([]float32, testSamplesPerTrace)
	err = f.AppendTrace(header, samples)
	require.ErrorIs(t, err, segy.ErrAppendUnderMmap)
}
