package core

import "math"

// ConvertSamplesToNative walks a buffer of n 4-byte on-disk samples and
// converts each to a native float32, using formatCode to select between
// an IBM float conversion and a big-endian byte swap (IEEE float). The
// results go into a newly allocated slice; buf is not modified in place.
// buf must be exactly n*4 bytes, big-endian.
func ConvertSamplesToNative(buf []byte, formatCode int32) []float32 {
	n := len(buf) / 4
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		raw := ReadUint32BE(buf, i*4)
		if formatCode == SampleFormatIEEEFloat {
			out[i] = math.Float32frombits(raw)
		} else {
			out[i] = IBMToIEEE(raw)
		}
	}
	return out
}

// ConvertSamplesToDisk converts a buffer of native float32 samples into
// their on-disk big-endian representation, inverse of ConvertSamplesToNative.
func ConvertSamplesToDisk(samples []float32, formatCode int32) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		var raw uint32
		if formatCode == SampleFormatIEEEFloat {
			raw = math.Float32bits(s)
		} else {
			raw = IEEEToIBM(s)
		}
		WriteUint32BE(buf, i*4, raw)
	}
	return buf
}
