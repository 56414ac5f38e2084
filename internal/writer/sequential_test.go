package writer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequentialSubstrateWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.segy")
	sub, err := NewFileForCreate(path, ModeTruncate, 0)
	require.NoError(t, err)
	defer func() { _ = sub.Close() }()

	addr, err := sub.Allocate(5)
	require.NoError(t, err)
	require.Equal(t, uint64(0), addr)

	_, err = sub.WriteAt([]byte("hello"), int64(addr))
	require.NoError(t, err)

	buf := make([]byte, 5)
	_, err = sub.ReadAt(buf, int64(addr))
	require.NoError(t, err)
	require.Equal(t, "hello", string(buf))

	require.NoError(t, sub.Flush(true))

	size, err := sub.Size()
	require.NoError(t, err)
	require.Equal(t, int64(5), size)
}

func TestSequentialSubstrateAllocateWithoutCreateFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.segy")
	sub, err := NewFileForCreate(path, ModeTruncate, 0)
	require.NoError(t, err)
	defer func() { _ = sub.Close() }()

	plain := NewSequentialSubstrate(sub.File())
	_, err = plain.Allocate(4)
	require.Error(t, err)
}

func TestSequentialSubstrateClosedOperationsFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.segy")
	sub, err := NewFileForCreate(path, ModeTruncate, 0)
	require.NoError(t, err)
	require.NoError(t, sub.Close())

	_, err = sub.ReadAt(make([]byte, 1), 0)
	require.Error(t, err)
	_, err = sub.WriteAt([]byte{1}, 0)
	require.Error(t, err)
	require.Error(t, sub.Flush(true))
	_, err = sub.Size()
	require.Error(t, err)
	require.NoError(t, sub.Close()) // idempotent
}

func TestSequentialSubstrateExclusiveModeFailsIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclusive.segy")
	sub, err := NewFileForCreate(path, ModeExclusive, 0)
	require.NoError(t, err)
	require.NoError(t, sub.Close())

	_, err = NewFileForCreate(path, ModeExclusive, 0)
	require.Error(t, err)
}
