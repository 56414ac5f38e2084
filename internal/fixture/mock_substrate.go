// Package fixture provides in-memory test doubles for the segy I/O
// substrate, so header and field round trips can be exercised without
// touching disk.
package fixture

import "errors"

// MockSubstrate is an in-memory writer.Substrate backed by a growable
// byte slice. Adapted from the teacher's read-only MockReaderAt, extended
// with WriteAt so both halves of a header/field round trip can be tested.
type MockSubstrate struct {
	data []byte
}

// NewMockSubstrate creates a mock substrate seeded with data. The slice
// is copied, so the caller's original is never mutated by WriteAt.
func NewMockSubstrate(data []byte) *MockSubstrate {
	m := &MockSubstrate{data: make([]byte, len(data))}
	copy(m.data, data)
	return m
}

// ReadAt implements writer.Substrate.
func (m *MockSubstrate) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("negative offset")
	}
	if off >= int64(len(m.data)) {
		return 0, errors.New("offset beyond EOF")
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, errors.New("short read")
	}
	return n, nil
}

// WriteAt implements writer.Substrate, growing the backing slice as
// needed so writes past the current end succeed the way a real file
// would under WriteAt.
func (m *MockSubstrate) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("negative offset")
	}
	end := off + int64(len(p))
	if end > int64(len(m.data)) {
		grown := make([]byte, end)
		copy(grown, m.data)
		m.data = grown
	}
	return copy(m.data[off:], p), nil
}

// Flush implements writer.Substrate; there is nothing to durably commit
// for an in-memory fixture, so it always succeeds.
func (m *MockSubstrate) Flush(sync bool) error {
	_ = sync
	return nil
}

// Size implements writer.Substrate.
func (m *MockSubstrate) Size() (int64, error) {
	return int64(len(m.data)), nil
}

// Close implements writer.Substrate; nothing to release.
func (m *MockSubstrate) Close() error {
	return nil
}

// Bytes returns the current backing slice, for assertions in tests.
func (m *MockSubstrate) Bytes() []byte {
	return m.data
}
