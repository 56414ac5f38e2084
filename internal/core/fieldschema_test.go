package core

import (
	"errors"
	"testing"

	"github.com/scigolib/segy/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestTraceFieldSymmetry(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)

	require.NoError(t, SetTraceField(buf, 189, 7))
	got, err := GetTraceField(buf, 189)
	require.NoError(t, err)
	require.Equal(t, int32(7), got)

	require.NoError(t, SetTraceField(buf, 37, -12345))
	got, err = GetTraceField(buf, 37)
	require.NoError(t, err)
	require.Equal(t, int32(-12345), got)
}

func TestTraceFieldOnlyMutatesItsBytes(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)
	for i := range buf {
		buf[i] = 0xaa
	}
	require.NoError(t, SetTraceField(buf, 189, 0))
	for i := 0; i < TraceHeaderSize; i++ {
		if i >= 188 && i < 192 {
			continue
		}
		require.Equal(t, byte(0xaa), buf[i], "byte %d was mutated", i)
	}
}

func TestTraceFieldUnrecognizedOffset(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)
	_, err := GetTraceField(buf, 2)
	require.Error(t, err)

	var codecErr *utils.CodecError
	require.True(t, errors.As(err, &codecErr))
	require.Equal(t, utils.InvalidField, codecErr.Code)
}

func TestBinaryFieldAcceptsSpecGlobalAndLocalOffsets(t *testing.T) {
	buf := make([]byte, BinaryHeaderSize)
	require.NoError(t, SetBinaryField(buf, 3217, 4000))

	got, err := GetBinaryField(buf, 3217)
	require.NoError(t, err)
	require.Equal(t, int32(4000), got)

	got, err = GetBinaryField(buf, 17)
	require.NoError(t, err)
	require.Equal(t, int32(4000), got)
}

func TestBinaryFieldUnrecognizedOffset(t *testing.T) {
	buf := make([]byte, BinaryHeaderSize)
	_, err := GetBinaryField(buf, 3201)
	require.Error(t, err)
}

func TestFieldOutOfRange(t *testing.T) {
	// Field 189 is recognized, but its bytes lie beyond this short buffer.
	buf := make([]byte, 100)
	_, err := GetTraceField(buf, 189)
	require.Error(t, err)
}
