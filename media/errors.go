package media

import "errors"

// Sentinel errors for media package operations.
// These errors enable reliable error classification using errors.Is().

var (
	// ErrUnknownPayloadType indicates TrackCodec was asked to decode a
	// payload type that is not a recognized audio codec.
	ErrUnknownPayloadType = errors.New("unknown audio payload type")

	// ErrInvalidSampleRate indicates a zero or otherwise unusable sample
	// rate was supplied.
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	// ErrInvalidGain indicates a gain value outside the accepted range.
	ErrInvalidGain = errors.New("invalid gain value")

	// ErrNilFrame indicates ProcessFrame was called with a nil frame.
	ErrNilFrame = errors.New("nil audio frame")
)
