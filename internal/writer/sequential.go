package writer

import (
	"fmt"
	"io"
	"os"
)

// SequentialSubstrate wraps an *os.File for buffered, seek-free
// random-access I/O. It is the default substrate; the mmap substrate is
// only used when the caller opts in.
//
// Thread-safety: not thread-safe. Caller must synchronize access.
type SequentialSubstrate struct {
	file      *os.File
	allocator *Allocator // only used by Create's layout construction
}

// NewSequentialSubstrate wraps an already-open file.
func NewSequentialSubstrate(file *os.File) *SequentialSubstrate {
	return &SequentialSubstrate{file: file}
}

// CreateMode specifies the file creation behavior for NewFileForCreate.
type CreateMode int

const (
	// ModeTruncate creates a new file, truncating if it exists.
	ModeTruncate CreateMode = iota

	// ModeExclusive creates a new file, fails if it exists.
	ModeExclusive
)

// NewFileForCreate opens a fresh file for Create's layout-construction
// pass, with an Allocator seeded at initialOffset (typically 0 — SEG-Y
// has no reserved preamble before the textual header).
func NewFileForCreate(filename string, mode CreateMode, initialOffset uint64) (*SequentialSubstrate, error) {
	var osFile *os.File
	var err error

	switch mode {
	case ModeTruncate:
		osFile, err = os.Create(filename)
	case ModeExclusive:
		osFile, err = os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
	default:
		return nil, fmt.Errorf("invalid create mode: %d", mode)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return &SequentialSubstrate{
		file:      osFile,
		allocator: NewAllocator(initialOffset),
	}, nil
}

// Allocate reserves size bytes at the current end of file, for use only
// during Create's layout-construction pass.
func (s *SequentialSubstrate) Allocate(size uint64) (uint64, error) {
	if s.file == nil {
		return 0, fmt.Errorf("substrate is closed")
	}
	if s.allocator == nil {
		return 0, fmt.Errorf("substrate has no allocator (not opened via NewFileForCreate)")
	}
	return s.allocator.Allocate(size)
}

// ReadAt implements Substrate.
func (s *SequentialSubstrate) ReadAt(buf []byte, offset int64) (int, error) {
	if s.file == nil {
		return 0, fmt.Errorf("substrate is closed")
	}
	return s.file.ReadAt(buf, offset)
}

// WriteAt implements Substrate.
func (s *SequentialSubstrate) WriteAt(buf []byte, offset int64) (int, error) {
	if s.file == nil {
		return 0, fmt.Errorf("substrate is closed")
	}
	if len(buf) == 0 {
		return 0, nil
	}
	n, err := s.file.WriteAt(buf, offset)
	if err != nil {
		return n, fmt.Errorf("write at offset %d failed: %w", offset, err)
	}
	if n != len(buf) {
		return n, fmt.Errorf("incomplete write at offset %d: wrote %d of %d bytes", offset, n, len(buf))
	}
	return n, nil
}

// Flush implements Substrate. The sequential substrate has no meaningful
// asynchronous mode: Sync is always blocking, regardless of sync.
func (s *SequentialSubstrate) Flush(sync bool) error {
	if s.file == nil {
		return fmt.Errorf("substrate is closed")
	}
	_ = sync
	return s.file.Sync()
}

// Size implements Substrate.
func (s *SequentialSubstrate) Size() (int64, error) {
	if s.file == nil {
		return 0, fmt.Errorf("substrate is closed")
	}
	fi, err := s.file.Stat()
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// Close implements Substrate.
func (s *SequentialSubstrate) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// File returns the underlying *os.File, for building the mmap substrate
// on top of the same descriptor after Create's layout pass completes.
func (s *SequentialSubstrate) File() *os.File {
	return s.file
}

var _ Substrate = (*SequentialSubstrate)(nil)
var (
	_ io.ReaderAt = (*SequentialSubstrate)(nil)
	_ io.WriterAt = (*SequentialSubstrate)(nil)
)
