package parser

import (
	errors "linked-lists/internal/platform/error"

	"github.com/hashicorp/go-msgpack/codec"
)

// EncodeValues packs a front-to-back element sequence as a msgpack array.
func EncodeValues[T any](values []T) ([]byte, error) {
	handle := new(codec.MsgpackHandle)

	var encoded []byte
	enc := codec.NewEncoderBytes(&encoded, handle)
	if err := enc.Encode(values); err != nil {
		return nil, errors.NewStackTraceError(err.Error(), errors.BinaryWriteErrorCode)
	}
	return encoded, nil
}

// DecodeValues is the inverse of EncodeValues. A nil or empty array decodes to an empty slice.
func DecodeValues[T any](data []byte) ([]T, error) {
	handle := new(codec.MsgpackHandle)

	var values []T
	dec := codec.NewDecoderBytes(data, handle)
	if err := dec.Decode(&values); err != nil {
		return nil, errors.NewStackTraceError(err.Error(), errors.BinaryReadErrorCode)
	}
	if values == nil {
		values = make([]T, 0)
	}
	return values, nil
}
