package error

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackTraceError_CapturesStack(t *testing.T) {
	err := NewStackTraceError("node 3 already borrowed", AlreadyBorrowedErrorCode)

	require.Equal(t, AlreadyBorrowedErrorCode, err.ErrorCode)
	require.Contains(t, err.Error(), "node 3 already borrowed")
	require.Contains(t, err.Error(), "Stack trace:")
	require.Contains(t, err.Stack, "TestStackTraceError_CapturesStack")
}

func TestCode_String(t *testing.T) {
	require.Equal(t, "AlreadyBorrowed", AlreadyBorrowedErrorCode.String())
	require.Equal(t, "Code(99)", Code(99).String())
}
