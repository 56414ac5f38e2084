package segy_test

import (
	"os"
	"path/filepath"
	"testing"

	segy "github.com/scigolib/segy"
	"github.com/scigolib/segy/internal/core"
	"github.com/stretchr/testify/require"
)

const (
	testSamplesPerTrace = 50
	testSampleInterval  = 4000
	testInlineCount     = 5
	testCrosslineCount  = 5
	testInlineField     = 189
	testCrosslineField  = 193
)

// buildSmallFixture creates the spec's canonical 25-trace, 50-sample,
// 5x5x1 fixture (inline-sorted, crossline the fast axis) at path.
func buildSmallFixture(t *testing.T, path string) {
	t.Helper()
	f, err := segy.Create(path, segy.CreateTruncate, testSampleInterval, testSamplesPerTrace, core.SampleFormatIEEEFloat)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	for il := 0; il < testInlineCount; il++ {
		for xl := 0; xl < testCrosslineCount; xl++ {
			header := make([]byte, core.TraceHeaderSize)
			require.NoError(t, core.SetTraceField(header, testInlineField, int32(il+1)))
			require.NoError(t, core.SetTraceField(header, testCrosslineField, int32(xl+20)))

			idx := il*testCrosslineCount + xl
			base := float32(1.2)
			if idx == 6 {
				base = 2.21
			}
			samples := make([]float32, testSamplesPerTrace)
			for k := range samples {
				samples[k] = base + float32(k)*1e-5
			}
			require.NoError(t, f.AppendTrace(header, samples))
		}
	}
}

func TestCreateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "create.sgy")
	f, err := segy.Create(path, segy.CreateTruncate, testSampleInterval, testSamplesPerTrace, core.SampleFormatIEEEFloat)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.Equal(t, int32(testSampleInterval), f.SampleInterval())
	require.Equal(t, int32(testSamplesPerTrace), f.SamplesPerTrace())
	require.Equal(t, int32(core.SampleFormatIEEEFloat), f.SampleFormat())
	require.Equal(t, int64(0), f.TraceCount())
}

func TestOpenEmptyModeRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.sgy")
	buildSmallFixture(t, path)

	_, err := segy.Open(path, "")
	require.Error(t, err)
	require.Equal(t, segy.InvalidArgs, segy.CodeOf(err))
}

func TestTraceCountInvariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	f, err := segy.Open(path, "rb")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.Equal(t, int64(25), f.TraceCount())
	require.NoError(t, f.Validate())
}

func TestGeometryOnSmallFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	f, err := segy.Open(path, "rb")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	geom, err := f.AnalyzeGeometry(testInlineField, testCrosslineField)
	require.NoError(t, err)

	require.Equal(t, core.SortingInline, geom.Sorting)
	require.Equal(t, int64(1), geom.Offsets)
	require.Equal(t, int64(5), geom.InlineCount)
	require.Equal(t, int64(5), geom.CrosslineCount)
	require.Equal(t, []int32{1, 2, 3, 4, 5}, geom.InlineIndices)
	require.Equal(t, []int32{20, 21, 22, 23, 24}, geom.CrosslineIndices)
}

func TestReadTrace0AndTrace6(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	f, err := segy.Open(path, "rb")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	trace0, err := f.ReadTrace(0)
	require.NoError(t, err)
	require.Len(t, trace0.Samples, testSamplesPerTrace)
	require.InDelta(t, 1.2, trace0.Samples[0], 1e-5)

	trace6, err := f.ReadTrace(6)
	require.NoError(t, err)
	require.InDelta(t, 2.21, trace6.Samples[0], 1e-5)
}

func TestMmapSubstrateReadsMatchSequential(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	seq, err := segy.Open(path, "rb")
	require.NoError(t, err)
	defer func() { _ = seq.Close() }()

	mapped, err := segy.Open(path, "rb", segy.WithMmap())
	require.NoError(t, err)
	defer func() { _ = mapped.Close() }()

	require.Equal(t, seq.TraceCount(), mapped.TraceCount())

	seqGeom, err := seq.AnalyzeGeometry(testInlineField, testCrosslineField)
	require.NoError(t, err)
	mappedGeom, err := mapped.AnalyzeGeometry(testInlineField, testCrosslineField)
	require.NoError(t, err)
	require.Equal(t, seqGeom, mappedGeom)

	seqTrace, err := seq.ReadTrace(6)
	require.NoError(t, err)
	mappedTrace, err := mapped.ReadTrace(6)
	require.NoError(t, err)
	require.Equal(t, seqTrace.Samples, mappedTrace.Samples)
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	f, err := segy.Open(path, "rb")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}

// writeRawSegy hand-assembles a minimal one-trace file (blank textual
// header, a binary header carrying binaryInterval, one trace whose header
// field 117 carries traceInterval and whose body is all zeros), bypassing
// segy.Create/AppendTrace so the binary- and trace-header sample intervals
// can be set independently — including combinations Create itself could
// never produce, like a zero binary-header interval.
func writeRawSegy(t *testing.T, path string, binaryInterval, traceInterval int32) {
	t.Helper()

	total := core.TextHeaderSize + core.BinaryHeaderSize + core.TraceHeaderSize + testSamplesPerTrace*4
	buf := make([]byte, total)

	blank := make([]byte, core.TextHeaderSize)
	for i := range blank {
		blank[i] = ' '
	}
	copy(buf[0:core.TextHeaderSize], core.ASCIIToEBCDIC(blank))

	bh := make([]byte, core.BinaryHeaderSize)
	require.NoError(t, core.SetBinaryField(bh, 3217, binaryInterval))
	require.NoError(t, core.SetBinaryField(bh, 3221, testSamplesPerTrace))
	require.NoError(t, core.SetBinaryField(bh, 3225, core.SampleFormatIEEEFloat))
	require.NoError(t, core.SetBinaryField(bh, 3505, 0))
	copy(buf[core.TextHeaderSize:core.TextHeaderSize+core.BinaryHeaderSize], bh)

	traceOffset := core.TextHeaderSize + core.BinaryHeaderSize
	header := make([]byte, core.TraceHeaderSize)
	require.NoError(t, core.SetTraceField(header, 117, traceInterval))
	copy(buf[traceOffset:traceOffset+core.TraceHeaderSize], header)

	require.NoError(t, os.WriteFile(path, buf, 0o644))
}

func TestSampleIntervalReconciledFromTrace0(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reconcile.sgy")
	// Binary header interval left at 0 so the trace-header value wins per
	// ReconcileSampleInterval's "fall back to whichever is nonzero" rule.
	writeRawSegy(t, path, 0, 2000)

	f, err := segy.Open(path, "rb")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.Equal(t, int32(2000), f.SampleInterval())
}

func TestSampleIntervalMismatchFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mismatch.sgy")
	writeRawSegy(t, path, 4000, 2000)

	_, err := segy.Open(path, "rb")
	require.Error(t, err)
}
