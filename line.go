package segy

import (
	"github.com/scigolib/segy/internal/core"
	"github.com/scigolib/segy/internal/utils"
)

// AnalyzeGeometry deduces the file's cube shape, using il and xl as the
// trace-header field identifiers naming the inline and crossline axes.
func (f *File) AnalyzeGeometry(il, xl int) (*core.Geometry, error) {
	return core.AnalyzeGeometry(f, il, xl)
}

// ReadLine reads length consecutive traces starting at firstTrace,
// stepping by stride, and concatenates their decoded sample bodies into
// one contiguous buffer of length*samples_per_trace floats.
func (f *File) ReadLine(firstTrace, stride, length int64) ([]float32, error) {
	samplesPerTrace := int64(f.binHeader.SamplesPerTrace)
	out := make([]float32, 0, length*samplesPerTrace)
	for i := int64(0); i < length; i++ {
		samples, err := f.ReadTraceBody(firstTrace + i*stride)
		if err != nil {
			return nil, err
		}
		out = append(out, samples...)
	}
	return out, nil
}

// WriteLine writes length consecutive traces starting at firstTrace,
// stepping by stride, from one contiguous buffer of
// length*samples_per_trace floats.
func (f *File) WriteLine(firstTrace, stride, length int64, samples []float32) error {
	samplesPerTrace := int64(f.binHeader.SamplesPerTrace)
	if int64(len(samples)) != length*samplesPerTrace {
		return utils.NewError(utils.InvalidArgs, "sample buffer length does not match line length")
	}
	for i := int64(0); i < length; i++ {
		chunk := samples[i*samplesPerTrace : (i+1)*samplesPerTrace]
		if err := f.WriteTraceBody(firstTrace+i*stride, chunk); err != nil {
			return err
		}
	}
	return nil
}

// LineStartTrace computes the trace number of the first sample (offset
// 0) of the line at position in an enumerated line-index vector. A thin
// wrapper over the geometry analyzer's pure helper, exported so callers
// don't need to import internal/core.
func LineStartTrace(position int64, fastAxis bool, lineLength, offsets int64) int64 {
	return core.LineStartTrace(position, fastAxis, lineLength, offsets)
}

// IndexOf returns the position of target within indices, or -1 if
// absent — used to resolve a line number to its position before calling
// LineStartTrace.
func IndexOf(indices []int32, target int32) int {
	return core.IndexOf(indices, target)
}
