package writer

import (
	"fmt"
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// MmapSubstrate addresses a file through a memory-mapped region instead
// of buffered reads/writes. The backing *os.File is not closed by this
// substrate; the owner closes it on teardown after Close unmaps.
type MmapSubstrate struct {
	file *os.File
	m    mmap.MMap
}

// NewMmapSubstrate maps the full current extent of file. writable
// requests a read-write mapping; a read-only file opened read-write
// mapping will fail at the OS level and is surfaced as-is.
func NewMmapSubstrate(file *os.File, writable bool) (*MmapSubstrate, error) {
	prot := mmap.RDONLY
	if writable {
		prot = mmap.RDWR
	}
	m, err := mmap.Map(file, prot, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap failed: %w", err)
	}
	return &MmapSubstrate{file: file, m: m}, nil
}

// ReadAt implements Substrate.
func (s *MmapSubstrate) ReadAt(buf []byte, offset int64) (int, error) {
	if s.m == nil {
		return 0, fmt.Errorf("substrate is closed")
	}
	if offset < 0 || offset > int64(len(s.m)) {
		return 0, fmt.Errorf("read at offset %d out of mapped range (size %d)", offset, len(s.m))
	}
	n := copy(buf, s.m[offset:])
	if n < len(buf) {
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}

// WriteAt implements Substrate.
func (s *MmapSubstrate) WriteAt(buf []byte, offset int64) (int, error) {
	if s.m == nil {
		return 0, fmt.Errorf("substrate is closed")
	}
	if offset < 0 || offset+int64(len(buf)) > int64(len(s.m)) {
		return 0, fmt.Errorf("write at offset %d out of mapped range (size %d)", offset, len(s.m))
	}
	return copy(s.m[offset:], buf), nil
}

// Flush implements Substrate. sync=true calls mmap-go's Flush, which is
// synchronous. sync=false returns immediately without issuing or
// scheduling any msync.
func (s *MmapSubstrate) Flush(sync bool) error {
	if s.m == nil {
		return fmt.Errorf("substrate is closed")
	}
	if !sync {
		return nil
	}
	return s.m.Flush()
}

// Size implements Substrate, reporting the mapped extent.
func (s *MmapSubstrate) Size() (int64, error) {
	if s.m == nil {
		return 0, fmt.Errorf("substrate is closed")
	}
	return int64(len(s.m)), nil
}

// Close unmaps the region. The backing *os.File is not closed here —
// the caller (segy.File.Close) closes it after unmap, per the
// flush-then-unmap-then-close ordering the format's resource model
// requires.
func (s *MmapSubstrate) Close() error {
	if s.m == nil {
		return nil
	}
	err := s.m.Unmap()
	s.m = nil
	return err
}

// File returns the backing *os.File, so the caller can close it after
// Close unmaps.
func (s *MmapSubstrate) File() *os.File {
	return s.file
}

var _ Substrate = (*MmapSubstrate)(nil)
