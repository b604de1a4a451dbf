package codec

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Type identifies one of the supported telephony codecs.
//
// The enumeration is closed: the media pipeline is built around exactly
// these three wire formats and their fixed sample rates. The factory is
// still defensive against values outside the enumeration so that a future
// extension cannot silently construct a misconfigured codec.
type Type byte

const (
	// TypePCMU is ITU-T G.711 mu-law companding, 8000 Hz mono.
	TypePCMU Type = iota
	// TypePCMA is ITU-T G.711 A-law companding, 8000 Hz mono.
	TypePCMA
	// TypeG722 is ITU-T G.722 sub-band ADPCM, 16000 Hz mono.
	TypeG722
)

// Static RTP payload type assignments per RFC 3551, table 4.
const (
	PayloadTypePCMU uint8 = 0
	PayloadTypePCMA uint8 = 8
	PayloadTypeG722 uint8 = 9
)

// String returns the conventional codec name for logging.
func (t Type) String() string {
	switch t {
	case TypePCMU:
		return "PCMU"
	case TypePCMA:
		return "PCMA"
	case TypeG722:
		return "G722"
	default:
		return fmt.Sprintf("Type(%d)", byte(t))
	}
}

// PayloadType returns the static RTP payload type assigned to the codec.
func (t Type) PayloadType() uint8 {
	switch t {
	case TypePCMA:
		return PayloadTypePCMA
	case TypeG722:
		return PayloadTypeG722
	default:
		return PayloadTypePCMU
	}
}

// TypeFromPayload maps a static RTP payload type to its codec type.
//
// The boolean result is false for any payload type that is not one of the
// recognized audio codecs; DTMF telephone-event payloads and dynamic
// payload types never map to a codec here.
func TypeFromPayload(payloadType uint8) (Type, bool) {
	switch payloadType {
	case PayloadTypePCMU:
		return TypePCMU, true
	case PayloadTypePCMA:
		return TypePCMA, true
	case PayloadTypeG722:
		return TypeG722, true
	default:
		return 0, false
	}
}

// Decoder converts encoded codec frames into 16-bit PCM samples.
//
// A decoder must tolerate arbitrary input length and must not panic on
// malformed input: it either returns an error or substitutes silence, and
// the caller treats both as "no usable audio this call" without aborting
// the stream. Decoders may hold per-stream state and are not safe for
// concurrent use.
type Decoder interface {
	// Decode converts one or more codec frames' worth of encoded bytes
	// into PCM samples at the codec's native sample rate.
	Decode(data []byte) ([]int16, error)
	// SampleRate returns the codec's fixed sample rate in Hz.
	SampleRate() uint32
	// Channels returns the codec's fixed channel count.
	Channels() int
}

// Encoder converts 16-bit PCM samples into encoded codec frames.
//
// Encoders tolerate empty input (returning empty output) and buffer sample
// counts that are not aligned to the codec's working block; residual
// samples are carried in internal state for the next call. Encoders may
// hold per-stream state and are not safe for concurrent use.
type Encoder interface {
	// Encode converts PCM samples at the codec's native sample rate into
	// encoded bytes.
	Encode(pcm []int16) ([]byte, error)
	// SampleRate returns the codec's fixed sample rate in Hz.
	SampleRate() uint32
	// Channels returns the codec's fixed channel count.
	Channels() int
}

// NewDecoder constructs a fresh, correctly-initialized decoder for the
// given codec type.
//
// Returns ErrUnsupportedCodec if the type tag is outside the supported
// enumeration.
func NewDecoder(codecType Type) (Decoder, error) {
	logrus.WithFields(logrus.Fields{
		"function":   "NewDecoder",
		"codec_type": codecType.String(),
	}).Debug("Creating decoder")

	switch codecType {
	case TypePCMU:
		return NewPCMUDecoder(), nil
	case TypePCMA:
		return NewPCMADecoder(), nil
	case TypeG722:
		return NewG722Decoder(), nil
	default:
		logrus.WithFields(logrus.Fields{
			"function":   "NewDecoder",
			"codec_type": byte(codecType),
			"error":      "unknown codec type",
		}).Error("Decoder creation failed")
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCodec, byte(codecType))
	}
}

// NewEncoder constructs a fresh, correctly-initialized encoder for the
// given codec type.
//
// Returns ErrUnsupportedCodec if the type tag is outside the supported
// enumeration.
func NewEncoder(codecType Type) (Encoder, error) {
	logrus.WithFields(logrus.Fields{
		"function":   "NewEncoder",
		"codec_type": codecType.String(),
	}).Debug("Creating encoder")

	switch codecType {
	case TypePCMU:
		return NewPCMUEncoder(), nil
	case TypePCMA:
		return NewPCMAEncoder(), nil
	case TypeG722:
		return NewG722Encoder(), nil
	default:
		logrus.WithFields(logrus.Fields{
			"function":   "NewEncoder",
			"codec_type": byte(codecType),
			"error":      "unknown codec type",
		}).Error("Encoder creation failed")
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCodec, byte(codecType))
	}
}
