package fixture

import (
	"testing"

	"github.com/scigolib/segy/internal/writer"
	"github.com/stretchr/testify/require"
)

var _ writer.Substrate = (*MockSubstrate)(nil)

func TestMockSubstrateReadWriteRoundTrip(t *testing.T) {
	m := NewMockSubstrate(make([]byte, 16))
	n, err := m.WriteAt([]byte("hello"), 4)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	buf := make([]byte, 5)
	n, err = m.ReadAt(buf, 4)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(buf))
}

func TestMockSubstrateGrowsOnWritePastEnd(t *testing.T) {
	m := NewMockSubstrate(nil)
	_, err := m.WriteAt([]byte("abc"), 10)
	require.NoError(t, err)

	size, err := m.Size()
	require.NoError(t, err)
	require.Equal(t, int64(13), size)
}

func TestMockSubstrateReadNegativeOffset(t *testing.T) {
	m := NewMockSubstrate(make([]byte, 4))
	_, err := m.ReadAt(make([]byte, 1), -1)
	require.Error(t, err)
}

func TestMockSubstrateDoesNotMutateCallerSlice(t *testing.T) {
	seed := []byte{1, 2, 3}
	m := NewMockSubstrate(seed)
	_, err := m.WriteAt([]byte{9}, 0)
	require.NoError(t, err)
	require.Equal(t, byte(1), seed[0])
}
