package core

import "github.com/scigolib/segy/internal/utils"

// Sample format codes from the binary header's sample format field (offset
// 3225). Only IBM float and IEEE float are required to round-trip through
// the sample converter; the rest are acknowledged at the code level only.
const (
	SampleFormatIBMFloat  = 1
	SampleFormatInt32     = 2
	SampleFormatInt16     = 3
	SampleFormatFixedGain = 4 // obsolete
	SampleFormatIEEEFloat = 5
	SampleFormatInt8      = 8
	bytesPerSampleDefault = 4

	// TextHeaderSize is the size in bytes of the mandatory textual header
	// at offset 0, and of each extended textual header that follows the
	// binary header.
	TextHeaderSize         = 3200
	extendedTextHeaderSize = TextHeaderSize
	textHeaderSize         = TextHeaderSize
	binaryHeaderSize       = BinaryHeaderSize
)

// BinaryHeader holds the binary-header fields the core depends on, parsed
// from the raw 400-byte buffer.
type BinaryHeader struct {
	SampleInterval      int32
	SamplesPerTrace     int32
	SampleFormat        int32
	ExtendedHeaderCount int32
}

// ParseBinaryHeader extracts the fields the core needs from a raw 400-byte
// binary header buffer.
func ParseBinaryHeader(buf []byte) (*BinaryHeader, error) {
	if len(buf) != binaryHeaderSize {
		return nil, utils.NewError(utils.InvalidArgs, "binary header must be 400 bytes")
	}

	sampleInterval, err := GetBinaryField(buf, 3217)
	if err != nil {
		return nil, err
	}
	samplesPerTrace, err := GetBinaryField(buf, 3221)
	if err != nil {
		return nil, err
	}
	sampleFormat, err := GetBinaryField(buf, 3225)
	if err != nil {
		return nil, err
	}
	if err := ValidateSampleFormat(sampleFormat); err != nil {
		return nil, err
	}
	extCount, err := GetBinaryField(buf, 3505)
	if err != nil {
		return nil, err
	}

	return &BinaryHeader{
		SampleInterval:      sampleInterval,
		SamplesPerTrace:     samplesPerTrace,
		SampleFormat:        sampleFormat,
		ExtendedHeaderCount: extCount,
	}, nil
}

// SampleFormatByteWidth returns the on-disk byte width of one sample for
// formatCode, and whether that format is supported. Only the 4-byte-wide
// formats are: trace_bsize = samples * 4 is assumed throughout, so a
// 2-byte (int16) or 1-byte (int8) format would misalign every trace after
// the first if silently accepted.
func SampleFormatByteWidth(formatCode int32) (width int, ok bool) {
	switch formatCode {
	case SampleFormatIBMFloat, SampleFormatInt32, SampleFormatFixedGain, SampleFormatIEEEFloat:
		return 4, true
	case SampleFormatInt16:
		return 2, false
	case SampleFormatInt8:
		return 1, false
	default:
		return 0, false
	}
}

// ValidateSampleFormat rejects any sample format code whose on-disk sample
// width isn't 4 bytes, instead of letting TraceBodySize silently compute
// the wrong trace stride for it.
func ValidateSampleFormat(formatCode int32) error {
	if _, ok := SampleFormatByteWidth(formatCode); !ok {
		return utils.NewError(utils.InvalidArgs, "unsupported sample format code: only 4-byte sample formats are supported")
	}
	return nil
}

// Trace0 is the file offset of the first trace: the textual header, binary
// header, and any extended textual headers, laid end to end.
func Trace0(extendedHeaderCount int32) int64 {
	return int64(textHeaderSize) + int64(binaryHeaderSize) + int64(extendedHeaderCount)*int64(extendedTextHeaderSize)
}

// TraceBodySize returns the sample-body byte size of one trace for the
// library's supported (hard 4-byte) sample formats.
func TraceBodySize(samplesPerTrace int32) (uint64, error) {
	return utils.CalculateTraceBodySize(uint64(samplesPerTrace), bytesPerSampleDefault)
}

// ReconcileSampleInterval implements the format's intended sample-interval
// rule: prefer the trace header's value when both header and trace agree
// (or the trace is the only nonzero one); otherwise fall back to whichever
// of the two is nonzero; signal a mismatch when both are nonzero and differ.
func ReconcileSampleInterval(binaryInterval, traceInterval int32) (int32, error) {
	switch {
	case binaryInterval == 0 && traceInterval == 0:
		return 0, utils.NewError(utils.InvalidArgs, "no sample interval present in binary or trace header")
	case binaryInterval == 0:
		return traceInterval, nil
	case traceInterval == 0:
		return binaryInterval, nil
	case binaryInterval == traceInterval:
		return traceInterval, nil
	default:
		return 0, utils.NewError(utils.InvalidArgs, "binary and trace header sample intervals disagree")
	}
}
