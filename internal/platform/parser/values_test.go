package parser

import (
	"testing"

	platformerror "linked-lists/internal/platform/error"

	"github.com/stretchr/testify/require"
)

type point struct {
	X int64
	Y int64
}

func TestEncodeValues_KeepsOrder(t *testing.T) {
	data, err := EncodeValues([]int32{7, 6, 5, 4, 3, 2})
	require.NoError(t, err)

	values, err := DecodeValues[int32](data)
	require.NoError(t, err)
	require.Equal(t, []int32{7, 6, 5, 4, 3, 2}, values)
}

func TestEncodeValues_Structs(t *testing.T) {
	data, err := EncodeValues([]point{{X: 1, Y: 2}, {X: 3, Y: 4}})
	require.NoError(t, err)

	values, err := DecodeValues[point](data)
	require.NoError(t, err)
	require.Equal(t, []point{{X: 1, Y: 2}, {X: 3, Y: 4}}, values)
}

func TestEncodeValues_Empty(t *testing.T) {
	data, err := EncodeValues([]string{})
	require.NoError(t, err)

	values, err := DecodeValues[string](data)
	require.NoError(t, err)
	require.NotNil(t, values)
	require.Empty(t, values)
}

func TestDecodeValues_Truncated(t *testing.T) {
	data, err := EncodeValues([]int64{1, 2, 3})
	require.NoError(t, err)

	_, err = DecodeValues[int64](data[:len(data)-1])
	require.Error(t, err)

	var stackErr *platformerror.StackTraceError
	require.ErrorAs(t, err, &stackErr)
	require.Equal(t, platformerror.BinaryReadErrorCode, stackErr.ErrorCode)
}
