package segy

import (
	"github.com/scigolib/segy/internal/core"
	"github.com/scigolib/segy/internal/utils"
)

// ReadTextHeader reads the mandatory textual header at offset 0, decoded
// from EBCDIC to ASCII.
func (f *File) ReadTextHeader() (string, error) {
	return f.readTextHeaderAt(0)
}

// ReadExtendedTextHeader reads the extended textual header at the given
// 1-based index (index 1 is the first extended header, immediately
// after the binary header).
func (f *File) ReadExtendedTextHeader(index int) (string, error) {
	if index < 1 || int32(index) > f.binHeader.ExtendedHeaderCount {
		return "", utils.NewError(utils.InvalidArgs, "extended header index out of range")
	}
	return f.readTextHeaderAt(f.extendedHeaderOffset(index))
}

func (f *File) extendedHeaderOffset(index int) int64 {
	return int64(core.TextHeaderSize) + int64(core.BinaryHeaderSize) + int64(index-1)*int64(core.TextHeaderSize)
}

func (f *File) readTextHeaderAt(offset int64) (string, error) {
	buf := make([]byte, core.TextHeaderSize)
	if _, err := f.sub.ReadAt(buf, offset); err != nil {
		return "", utils.WrapError(utils.FReadError, "read textual header", err)
	}
	return string(core.EBCDICToASCII(buf)), nil
}

// WriteTextHeader writes the mandatory textual header (index 0) or an
// extended textual header (index >= 1), space-padding text to 3200
// bytes and encoding it to EBCDIC.
func (f *File) WriteTextHeader(index int, text string) error {
	var offset int64
	switch {
	case index == 0:
		offset = 0
	case index > 0:
		offset = f.extendedHeaderOffset(index)
	default:
		return utils.NewError(utils.InvalidArgs, "negative text header index")
	}

	buf := make([]byte, core.TextHeaderSize)
	n := copy(buf, text)
	for i := n; i < len(buf); i++ {
		buf[i] = ' '
	}
	if _, err := f.sub.WriteAt(core.ASCIIToEBCDIC(buf), offset); err != nil {
		return utils.WrapError(utils.FWriteError, "write textual header", err)
	}
	return nil
}

// ReadBinaryHeader returns the parsed binary header loaded at Open time.
func (f *File) ReadBinaryHeader() *core.BinaryHeader {
	return f.binHeader
}

// WriteBinaryHeader overwrites the 400-byte binary header region and
// refreshes the derived trace0/trace-body-size values.
func (f *File) WriteBinaryHeader(buf []byte) error {
	if len(buf) != core.BinaryHeaderSize {
		return utils.NewError(utils.InvalidArgs, "binary header must be 400 bytes")
	}
	if _, err := f.sub.WriteAt(buf, core.TextHeaderSize); err != nil {
		return utils.WrapError(utils.FWriteError, "write binary header", err)
	}
	return f.loadBinaryHeader()
}

// TraceHeader reads the 240-byte header of trace index. Satisfies
// core.TraceHeaderReader so a *File can be passed directly to
// AnalyzeGeometry.
func (f *File) TraceHeader(index int64) ([]byte, error) {
	buf := make([]byte, core.TraceHeaderSize)
	pos := f.trace0 + index*f.traceStride()
	if _, err := f.sub.ReadAt(buf, pos); err != nil {
		return nil, utils.WrapError(utils.FReadError, "read trace header", err)
	}
	return buf, nil
}

// WriteTraceHeader overwrites the 240-byte header of trace index.
func (f *File) WriteTraceHeader(index int64, buf []byte) error {
	if len(buf) != core.TraceHeaderSize {
		return utils.NewError(utils.InvalidArgs, "trace header must be 240 bytes")
	}
	pos := f.trace0 + index*f.traceStride()
	if _, err := f.sub.WriteAt(buf, pos); err != nil {
		return utils.WrapError(utils.FWriteError, "write trace header", err)
	}
	return nil
}
