// Package segy provides a pure Go implementation for reading and writing
// SEG-Y seismic data files: fixed-offset textual/binary/trace headers,
// bit-exact IBM-float sample conversion, and geometry analysis that
// deduces a file's inline/crossline/offset cube shape from its trace
// headers alone.
package segy

import (
	"errors"
	"os"
	"strings"

	"github.com/scigolib/segy/internal/core"
	"github.com/scigolib/segy/internal/utils"
	"github.com/scigolib/segy/internal/writer"
)

// File represents an open SEG-Y file and the derived values (trace0,
// trace body size, parsed binary header) needed to address it. Geometry
// is never cached here — §3's data model computes it on demand.
type File struct {
	sub      writer.Substrate
	osFile   *os.File // kept to close last, after the substrate's own Close/unmap
	writable bool

	binHeader  *core.BinaryHeader
	trace0     int64
	traceBSize uint64
}

// Open opens an existing SEG-Y file for reading, or reading and writing
// if mode contains '+' or 'w'. mode follows POSIX fopen convention
// ("rb", "r+b", "w+b", ...); the core only inspects it to decide whether
// a requested mmap should be writable.
func Open(path, mode string, opts ...Option) (*File, error) {
	if mode == "" {
		return nil, utils.NewError(utils.InvalidArgs, "empty mode string")
	}
	cfg := newConfig(opts)
	writable := strings.ContainsAny(mode, "+w")

	flags := os.O_RDONLY
	if writable {
		flags = os.O_RDWR
	}
	osFile, err := os.OpenFile(path, flags, 0)
	if err != nil {
		return nil, utils.WrapError(utils.FOpenError, "open "+path, err)
	}

	sub, err := newSubstrate(osFile, writable, cfg.useMmap)
	if err != nil {
		_ = osFile.Close()
		return nil, err
	}

	f := &File{sub: sub, osFile: osFile, writable: writable}
	if err := f.loadBinaryHeader(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func newSubstrate(osFile *os.File, writable, useMmap bool) (writer.Substrate, error) {
	if !useMmap {
		return writer.NewSequentialSubstrate(osFile), nil
	}
	m, err := writer.NewMmapSubstrate(osFile, writable)
	if err != nil {
		return nil, utils.WrapError(utils.MMapError, "mmap "+osFile.Name(), err)
	}
	return m, nil
}

func (f *File) loadBinaryHeader() error {
	buf := make([]byte, core.BinaryHeaderSize)
	if _, err := f.sub.ReadAt(buf, core.TextHeaderSize); err != nil {
		return utils.WrapError(utils.FReadError, "read binary header", err)
	}
	bh, err := core.ParseBinaryHeader(buf)
	if err != nil {
		return err
	}
	bsize, err := core.TraceBodySize(bh.SamplesPerTrace)
	if err != nil {
		return err
	}
	f.binHeader = bh
	f.trace0 = core.Trace0(bh.ExtendedHeaderCount)
	f.traceBSize = bsize

	traceInterval, err := f.readTrace0SampleInterval()
	if err != nil {
		return err
	}
	reconciled, err := core.ReconcileSampleInterval(bh.SampleInterval, traceInterval)
	if err != nil {
		return err
	}
	f.binHeader.SampleInterval = reconciled
	return nil
}

// readTrace0SampleInterval reads trace-header field 117 (sample interval
// for this trace) from the first trace, or returns 0 when the file has no
// traces yet — a freshly Created file. ReconcileSampleInterval treats a
// zero trace interval as "absent" and falls back to the binary header.
func (f *File) readTrace0SampleInterval() (int32, error) {
	size, err := f.sub.Size()
	if err != nil {
		return 0, utils.WrapError(utils.FSeekError, "stat file size", err)
	}
	if size-f.trace0 < int64(core.TraceHeaderSize) {
		return 0, nil
	}
	buf := make([]byte, core.TraceHeaderSize)
	if _, err := f.sub.ReadAt(buf, f.trace0); err != nil {
		return 0, utils.WrapError(utils.FReadError, "read trace 0 header", err)
	}
	return core.GetTraceField(buf, 117)
}

// Flush commits pending writes. sync=true blocks until durable. sync=false
// does nothing under the mmap substrate (no msync is issued or scheduled)
// and is still a blocking Sync under the sequential substrate.
func (f *File) Flush(sync bool) error {
	if err := f.sub.Flush(sync); err != nil {
		return utils.WrapError(utils.FWriteError, "flush", err)
	}
	return nil
}

// Close flushes, releases the substrate (unmapping if mmap was used),
// then closes the underlying descriptor, in that order, returning the
// first non-nil error encountered — exactly the ordering the format's
// resource model requires.
func (f *File) Close() error {
	var firstErr error
	if f.writable {
		if err := f.sub.Flush(true); err != nil && firstErr == nil {
			firstErr = utils.WrapError(utils.FWriteError, "flush on close", err)
		}
	}
	if err := f.sub.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if f.osFile != nil {
		// The sequential substrate's Close already closes this shared
		// descriptor, so an already-closed descriptor is not an error here.
		if err := f.osFile.Close(); err != nil && !errors.Is(err, os.ErrClosed) && firstErr == nil {
			firstErr = err
		}
		f.osFile = nil
	}
	return firstErr
}

// SampleInterval returns the binary header's sample interval in
// microseconds.
func (f *File) SampleInterval() int32 { return f.binHeader.SampleInterval }

// SamplesPerTrace returns the binary header's declared samples-per-trace.
func (f *File) SamplesPerTrace() int32 { return f.binHeader.SamplesPerTrace }

// SampleFormat returns the binary header's sample format code.
func (f *File) SampleFormat() int32 { return f.binHeader.SampleFormat }

// ExtendedHeaderCount returns the number of extended textual headers.
func (f *File) ExtendedHeaderCount() int32 { return f.binHeader.ExtendedHeaderCount }

// Trace0 returns the file offset of the first trace.
func (f *File) Trace0() int64 { return f.trace0 }

// TraceBodySize returns the per-trace sample-body size in bytes.
func (f *File) TraceBodySize() uint64 { return f.traceBSize }

// traceStride is the full on-disk size of one trace: header plus body.
func (f *File) traceStride() int64 {
	return int64(core.TraceHeaderSize) + int64(f.traceBSize)
}

// TraceCount is the trace_count invariant of §8: (file size - trace0) /
// (240 + trace_bsize), which must divide evenly or the file is
// structurally inconsistent. Satisfies core.TraceHeaderReader, returning
// 0 on error since the interface has no error return; callers that need
// the error should call Validate.
func (f *File) TraceCount() int64 {
	n, err := f.traceCount()
	if err != nil {
		return 0
	}
	return n
}

// Validate re-derives TraceCount, surfacing a TraceSizeMismatch error
// instead of silently returning 0 the way TraceCount must.
func (f *File) Validate() error {
	_, err := f.traceCount()
	return err
}

func (f *File) traceCount() (int64, error) {
	size, err := f.sub.Size()
	if err != nil {
		return 0, utils.WrapError(utils.FSeekError, "stat file size", err)
	}
	remaining := size - f.trace0
	stride := f.traceStride()
	if remaining < 0 || stride == 0 {
		return 0, utils.NewError(utils.TraceSizeMismatch, "file smaller than trace0")
	}
	if remaining%stride != 0 {
		return 0, utils.NewError(utils.TraceSizeMismatch, "file size is not a whole number of traces")
	}
	return remaining / stride, nil
}
