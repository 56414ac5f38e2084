package core

import (
	"fmt"

	"github.com/scigolib/segy/internal/utils"
)

// Header sizes in bytes.
const (
	TraceHeaderSize  = 240
	BinaryHeaderSize = 400

	// binaryHeaderFileOffset is the file offset at which the binary header
	// begins; public binary-header field identifiers are spec-global byte
	// offsets (3201..3600) measured from the start of the textual header,
	// and must be translated to 1..400 by subtracting this.
	binaryHeaderFileOffset = 3200
)

// fieldWidth is the width in bytes of a recognized header field: 0 means
// "unrecognized", 2 or 4 are the only other legal values.
type fieldWidth int

const (
	widthUnrecognized fieldWidth = 0
	width2            fieldWidth = 2
	width4            fieldWidth = 4
)

// traceHeaderSchema maps a 1-based trace-header byte offset to its width.
// Sparse: any offset absent from the map is unrecognized. Only the rev-1
// fields listed below are populated; get/set through any other offset,
// including other rev-1 fields, fails with InvalidField.
var traceHeaderSchema = map[int]fieldWidth{
	1:   width4, // trace sequence number within line
	5:   width4, // trace sequence number within file
	9:   width4, // original field record number
	13:  width4, // trace number within original field record
	17:  width4, // energy source point number
	21:  width4, // ensemble number (CDP)
	25:  width4, // trace number within ensemble
	29:  width2, // trace identification code
	37:  width4, // offset (source-to-receiver distance)
	71:  width2, // scalar for elevations/depths
	115: width2, // samples in this trace
	117: width2, // sample interval for this trace
	189: width4, // inline number (rev-1 default)
	193: width4, // crossline number (rev-1 default)
}

// binaryHeaderSchema maps a 1-based binary-header byte offset (3201..3600
// in the public, spec-global numbering) to its width.
var binaryHeaderSchema = map[int]fieldWidth{
	3205: width4, // job identification number
	3213: width2, // number of data traces per ensemble
	3217: width2, // sample interval
	3221: width2, // samples per trace
	3225: width2, // sample format code
	3229: width2, // ensemble fold
	3233: width2, // trace sorting code
	3503: width2, // SEG-Y format revision number
	3505: width2, // extended textual header count
}

func traceFieldWidth(offset int) fieldWidth {
	return traceHeaderSchema[offset]
}

func binaryFieldWidth(offset int) fieldWidth {
	globalOffset := offset
	if globalOffset <= binaryHeaderFileOffset {
		globalOffset += binaryHeaderFileOffset
	}
	return binaryHeaderSchema[globalOffset]
}

// GetTraceField reads the recognized field at 1-based offset from a
// 240-byte trace header buffer, sign-extending if narrower than 32 bits.
func GetTraceField(buf []byte, offset int) (int32, error) {
	return getField(buf, offset, TraceHeaderSize, traceFieldWidth(offset))
}

// SetTraceField writes value into the recognized field at 1-based offset
// in a 240-byte trace header buffer.
func SetTraceField(buf []byte, offset int, value int32) error {
	return setField(buf, offset, TraceHeaderSize, traceFieldWidth(offset), value)
}

// GetBinaryField reads the recognized field at a spec-global (3201..3600)
// or already-local (1..400) binary-header offset from a 400-byte binary
// header buffer, sign-extending if narrower than 32 bits.
func GetBinaryField(buf []byte, offset int) (int32, error) {
	local := offset
	if local > binaryHeaderFileOffset {
		local -= binaryHeaderFileOffset
	}
	return getField(buf, local, BinaryHeaderSize, binaryFieldWidth(offset))
}

// SetBinaryField writes value into the recognized field at a spec-global
// or local binary-header offset in a 400-byte binary header buffer.
func SetBinaryField(buf []byte, offset int, value int32) error {
	local := offset
	if local > binaryHeaderFileOffset {
		local -= binaryHeaderFileOffset
	}
	return setField(buf, local, BinaryHeaderSize, binaryFieldWidth(offset), value)
}

func getField(buf []byte, offset, headerSize int, w fieldWidth) (int32, error) {
	if w == widthUnrecognized {
		return 0, utils.NewError(utils.InvalidField, fieldErrContext(offset))
	}
	start := offset - 1
	if start < 0 || start+int(w) > headerSize {
		return 0, utils.NewError(utils.InvalidField, fieldErrContext(offset))
	}
	if start+int(w) > len(buf) {
		return 0, utils.NewError(utils.InvalidField, fieldErrContext(offset))
	}

	switch w {
	case width2:
		return ReadInt16BE(buf, start), nil
	case width4:
		return ReadInt32BE(buf, start), nil
	default:
		return 0, utils.NewError(utils.InvalidField, fieldErrContext(offset))
	}
}

func setField(buf []byte, offset, headerSize int, w fieldWidth, value int32) error {
	if w == widthUnrecognized {
		return utils.NewError(utils.InvalidField, fieldErrContext(offset))
	}
	start := offset - 1
	if start < 0 || start+int(w) > headerSize {
		return utils.NewError(utils.InvalidField, fieldErrContext(offset))
	}
	if start+int(w) > len(buf) {
		return utils.NewError(utils.InvalidField, fieldErrContext(offset))
	}

	switch w {
	case width2:
		WriteUint16BE(buf, start, uint16(value))
	case width4:
		WriteUint32BE(buf, start, uint32(value))
	default:
		return utils.NewError(utils.InvalidField, fieldErrContext(offset))
	}
	return nil
}

func fieldErrContext(offset int) string {
	return fmt.Sprintf("field offset %d", offset)
}
