package codec

import "errors"

// Sentinel errors for codec package operations.
// These errors enable reliable error classification using errors.Is().

var (
	// ErrUnsupportedCodec indicates the factory was given a codec type
	// outside the supported enumeration.
	ErrUnsupportedCodec = errors.New("unsupported codec type")

	// ErrDecode indicates a codec body failed to decode its input.
	ErrDecode = errors.New("decode failed")

	// ErrEncode indicates a codec body failed to encode its input.
	ErrEncode = errors.New("encode failed")
)
