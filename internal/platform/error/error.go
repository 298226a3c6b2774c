package error

import (
	"fmt"
	"runtime"
)

type Code uint32

const (
	BinaryWriteErrorCode Code = iota
	BinaryReadErrorCode
	AlreadyBorrowedErrorCode
	AlreadyMutablyBorrowedErrorCode
	ReleasedBorrowErrorCode
)

func (c Code) String() string {
	switch c {
	case BinaryWriteErrorCode:
		return "BinaryWrite"
	case BinaryReadErrorCode:
		return "BinaryRead"
	case AlreadyBorrowedErrorCode:
		return "AlreadyBorrowed"
	case AlreadyMutablyBorrowedErrorCode:
		return "AlreadyMutablyBorrowed"
	case ReleasedBorrowErrorCode:
		return "ReleasedBorrow"
	default:
		return fmt.Sprintf("Code(%d)", uint32(c))
	}
}

// StackTraceError wraps any error and captures a stack trace
type StackTraceError struct {
	Msg       string
	Stack     string
	ErrorCode Code
}

func NewStackTraceError(msg string, errorCode Code) *StackTraceError {
	buf := make([]byte, 1024*8)
	n := runtime.Stack(buf, false)
	return &StackTraceError{Msg: msg, Stack: string(buf[:n]), ErrorCode: errorCode}
}

func (e *StackTraceError) Error() string {
	return fmt.Sprintf("%s\nStack trace:\n%s", e.Msg, e.Stack)
}
