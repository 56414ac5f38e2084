package segy

import (
	"fmt"

	"github.com/scigolib/segy/internal/core"
	"github.com/scigolib/segy/internal/utils"
	"github.com/scigolib/segy/internal/writer"
)

// ErrAppendUnderMmap is returned by AppendTrace when the file was opened
// with WithMmap: the mapped extent is fixed at open time and cannot grow.
var ErrAppendUnderMmap = &utils.CodecError{Code: utils.InvalidArgs}

// CreateMode specifies how to create a new SEG-Y file.
type CreateMode int

const (
	// CreateTruncate creates a new file, overwriting if it exists.
	CreateTruncate CreateMode = iota

	// CreateExclusive creates a new file, failing if it already exists.
	CreateExclusive
)

// Create builds a new, minimal, valid SEG-Y file: a blank (space-padded,
// EBCDIC-encoded) textual header, a binary header carrying the given
// sample interval (microseconds), samples-per-trace, and sample format
// code, zero extended headers, and zero traces — then reopens it with
// Open so the returned handle goes through the same substrate-selection
// path as any other file.
func Create(filename string, mode CreateMode, sampleInterval, samplesPerTrace, sampleFormat int32, opts ...Option) (*File, error) {
	if err := core.ValidateSampleFormat(sampleFormat); err != nil {
		return nil, err
	}

	var writerMode writer.CreateMode
	switch mode {
	case CreateTruncate:
		writerMode = writer.ModeTruncate
	case CreateExclusive:
		writerMode = writer.ModeExclusive
	default:
		return nil, fmt.Errorf("invalid create mode: %d", mode)
	}

	fw, err := writer.NewFileForCreate(filename, writerMode, 0)
	if err != nil {
		return nil, utils.WrapError(utils.FOpenError, "create "+filename, err)
	}
	cleanupOnError := true
	defer func() {
		if cleanupOnError {
			_ = fw.Close()
		}
	}()

	if err := writeBlankTextHeader(fw); err != nil {
		return nil, err
	}
	if err := writeInitialBinaryHeader(fw, sampleInterval, samplesPerTrace, sampleFormat); err != nil {
		return nil, err
	}

	if err := fw.Flush(true); err != nil {
		return nil, utils.WrapError(utils.FWriteError, "flush new file", err)
	}
	if err := fw.Close(); err != nil {
		return nil, utils.WrapError(utils.FWriteError, "close new file", err)
	}
	cleanupOnError = false

	return Open(filename, "r+b", opts...)
}

func writeBlankTextHeader(fw *writer.SequentialSubstrate) error {
	addr, err := fw.Allocate(core.TextHeaderSize)
	if err != nil {
		return utils.WrapError(utils.FWriteError, "allocate textual header", err)
	}
	blank := make([]byte, core.TextHeaderSize)
	for i := range blank {
		blank[i] = ' '
	}
	if _, err := fw.WriteAt(core.ASCIIToEBCDIC(blank), int64(addr)); err != nil {
		return utils.WrapError(utils.FWriteError, "write textual header", err)
	}
	return nil
}

func writeInitialBinaryHeader(fw *writer.SequentialSubstrate, sampleInterval, samplesPerTrace, sampleFormat int32) error {
	addr, err := fw.Allocate(core.BinaryHeaderSize)
	if err != nil {
		return utils.WrapError(utils.FWriteError, "allocate binary header", err)
	}
	buf := make([]byte, core.BinaryHeaderSize)
	if err := core.SetBinaryField(buf, 3217, sampleInterval); err != nil {
		return err
	}
	if err := core.SetBinaryField(buf, 3221, samplesPerTrace); err != nil {
		return err
	}
	if err := core.SetBinaryField(buf, 3225, sampleFormat); err != nil {
		return err
	}
	if err := core.SetBinaryField(buf, 3505, 0); err != nil {
		return err
	}
	if _, err := fw.WriteAt(buf, int64(addr)); err != nil {
		return utils.WrapError(utils.FWriteError, "write binary header", err)
	}
	return nil
}

// AppendTrace allocates space for one more trace at the end of the file
// and writes its header and sample body. Only meaningful against a
// sequential substrate opened for writing; the mmap substrate cannot
// grow the file it has already mapped.
func (f *File) AppendTrace(header []byte, samples []float32) error {
	if _, mapped := f.sub.(*writer.MmapSubstrate); mapped {
		return ErrAppendUnderMmap
	}
	if len(header) != core.TraceHeaderSize {
		return utils.NewError(utils.InvalidArgs, "trace header must be 240 bytes")
	}
	if int32(len(samples)) != f.binHeader.SamplesPerTrace {
		return utils.NewError(utils.InvalidArgs, "sample count does not match samples per trace")
	}

	size, err := f.sub.Size()
	if err != nil {
		return utils.WrapError(utils.FSeekError, "stat file size", err)
	}
	body := core.ConvertSamplesToDisk(samples, f.binHeader.SampleFormat)

	if _, err := f.sub.WriteAt(header, size); err != nil {
		return utils.WrapError(utils.FWriteError, "append trace header", err)
	}
	if _, err := f.sub.WriteAt(body, size+int64(core.TraceHeaderSize)); err != nil {
		return utils.WrapError(utils.FWriteError, "append trace body", err)
	}
	return nil
}
