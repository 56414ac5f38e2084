package segy

import (
	"github.com/scigolib/segy/internal/core"
	"github.com/scigolib/segy/internal/utils"
)

// Trace is a trace header paired with its decoded sample body.
type Trace struct {
	Header  []byte
	Samples []float32
}

// ReadTraceBody reads and converts the sample body of trace index to
// native float32s.
func (f *File) ReadTraceBody(index int64) ([]float32, error) {
	buf := make([]byte, f.traceBSize)
	pos := f.trace0 + index*f.traceStride() + int64(core.TraceHeaderSize)
	if _, err := f.sub.ReadAt(buf, pos); err != nil {
		return nil, utils.WrapError(utils.FReadError, "read trace body", err)
	}
	return core.ConvertSamplesToNative(buf, f.binHeader.SampleFormat), nil
}

// WriteTraceBody converts samples to on-disk format and writes the
// sample body of trace index. The sample count must match
// SamplesPerTrace exactly; the file is left unchanged otherwise.
func (f *File) WriteTraceBody(index int64, samples []float32) error {
	if int32(len(samples)) != f.binHeader.SamplesPerTrace {
		return utils.NewError(utils.InvalidArgs, "sample count does not match samples per trace")
	}
	buf := core.ConvertSamplesToDisk(samples, f.binHeader.SampleFormat)
	pos := f.trace0 + index*f.traceStride() + int64(core.TraceHeaderSize)
	if _, err := f.sub.WriteAt(buf, pos); err != nil {
		return utils.WrapError(utils.FWriteError, "write trace body", err)
	}
	return nil
}

// ReadTrace reads both the header and the decoded sample body of trace
// index.
func (f *File) ReadTrace(index int64) (*Trace, error) {
	header, err := f.TraceHeader(index)
	if err != nil {
		return nil, err
	}
	samples, err := f.ReadTraceBody(index)
	if err != nil {
		return nil, err
	}
	return &Trace{Header: header, Samples: samples}, nil
}
