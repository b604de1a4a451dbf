// Package dtmf extracts DTMF telephone events from RTP telephone-event
// payloads as specified in RFC 4733.
//
// A Detector is created once per stream and fed the raw payload of every
// packet whose payload type might carry telephone events. It reports a
// digit only on a confirmed, de-duplicated end-of-event, absorbing the
// repeat packets senders emit while a key is held and the retransmitted
// end packets they send for reliability:
//
//	detector := dtmf.NewDetector()
//	if digit, ok := detector.DetectRTP(packet.PayloadType, packet.Payload); ok {
//		// digit is "0"-"9", "*", "#" or "A"-"D"
//	}
//
// DTMF payloads are never audio codec payloads; they must not be pushed
// through the audio decode path.
package dtmf

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Telephone event codes per RFC 4733, section 3.2.
const (
	Event0     byte = 0
	Event1     byte = 1
	Event2     byte = 2
	Event3     byte = 3
	Event4     byte = 4
	Event5     byte = 5
	Event6     byte = 6
	Event7     byte = 7
	Event8     byte = 8
	Event9     byte = 9
	EventStar  byte = 10
	EventPound byte = 11
	EventA     byte = 12
	EventB     byte = 13
	EventC     byte = 14
	EventD     byte = 15
)

const (
	// minPayloadLen is the smallest valid telephone-event payload.
	minPayloadLen = 4

	// RFC 4733 telephone-event payload types are conventionally
	// negotiated in the dynamic range. A negotiated value outside this
	// range is a known limitation of the heuristic.
	dynamicPayloadMin = 96
	dynamicPayloadMax = 127

	// dedupWindow is how far duration must advance before the same event
	// code is accepted as a new key press.
	dedupWindow = 100
)

// Payload is the parsed view of one telephone-event payload.
type Payload struct {
	// Event is the telephone event code (0-15).
	Event byte
	// IsEnd is the end-of-event flag.
	IsEnd bool
	// Reserved holds the 7 reserved bits of the second byte.
	Reserved byte
	// Volume is the event volume (0-63); parsed for completeness, ignored
	// by detection.
	Volume byte
	// Duration is the event duration in timestamp units.
	Duration uint16
}

// ParsePayload reads the four-byte telephone-event layout.
//
// The payload is valid iff it is at least four bytes long and the event
// code does not exceed EventD. Duration is read from the low byte only;
// durations above 255 alias.
func ParsePayload(payload []byte) (Payload, bool) {
	if len(payload) < minPayloadLen {
		return Payload{}, false
	}

	event := payload[0]
	if event > EventD {
		return Payload{}, false
	}

	// Second byte: end bit is the most significant bit, the remaining
	// seven bits are reserved. Third byte: low six bits are volume.
	return Payload{
		Event:    event,
		IsEnd:    payload[1]&0x80 != 0,
		Reserved: payload[1] & 0x7F,
		Volume:   payload[2] & 0x3F,
		Duration: uint16(payload[3]),
	}, true
}

// Detector tracks per-stream telephone-event state so repeated packets of
// one key press collapse into a single reported digit.
//
// State is two independently-atomic scalars; a single logical stream is
// expected to be fed by one producer, and a rare race costs at most one
// duplicated or suppressed digit, never corruption. A detector persists
// for the life of its stream and is never reset.
type Detector struct {
	lastEvent    atomic.Uint32
	lastDuration atomic.Uint64
}

// NewDetector creates a detector for one stream.
func NewDetector() *Detector {
	logrus.WithFields(logrus.Fields{
		"function": "NewDetector",
	}).Debug("Creating new DTMF detector")

	return &Detector{}
}

// DetectRTP inspects one RTP payload for a completed telephone event.
//
// The digit symbol is returned with ok=true only when the payload parses
// as a telephone event in the dynamic payload type range, its end bit is
// set, and it is not a duplicate of the last reported event. Malformed or
// out-of-range payloads are an expected occurrence on a live stream and
// report nothing rather than an error.
func (d *Detector) DetectRTP(payloadType byte, payload []byte) (string, bool) {
	if len(payload) < minPayloadLen {
		return "", false
	}
	if payloadType < dynamicPayloadMin || payloadType > dynamicPayloadMax {
		return "", false
	}

	parsed, ok := ParsePayload(payload)
	if !ok {
		return "", false
	}

	// Only report end packets; in-progress repeats of a held key carry
	// the same event with the end bit clear.
	if !parsed.IsEnd {
		return "", false
	}

	duration := uint64(parsed.Duration)
	lastDuration := d.lastDuration.Load()
	lastEvent := byte(d.lastEvent.Load())

	// Senders retransmit the end packet a few times for reliability with
	// decreasing or near-identical durations; a fresh press of the same
	// digit shows a duration clearly past the suppression window.
	if parsed.Event == lastEvent &&
		(duration <= lastDuration || duration-lastDuration < dedupWindow) {
		return "", false
	}

	d.lastEvent.Store(uint32(parsed.Event))
	d.lastDuration.Store(duration)

	digit := eventDigit(parsed.Event)
	logrus.WithFields(logrus.Fields{
		"function": "DetectRTP",
		"event":    parsed.Event,
		"digit":    digit,
		"duration": duration,
		"volume":   parsed.Volume,
	}).Debug("Detected DTMF digit")

	return digit, true
}

// eventDigit maps a validated event code to its textual symbol.
func eventDigit(event byte) string {
	switch event {
	case Event0:
		return "0"
	case Event1:
		return "1"
	case Event2:
		return "2"
	case Event3:
		return "3"
	case Event4:
		return "4"
	case Event5:
		return "5"
	case Event6:
		return "6"
	case Event7:
		return "7"
	case Event8:
		return "8"
	case Event9:
		return "9"
	case EventStar:
		return "*"
	case EventPound:
		return "#"
	case EventA:
		return "A"
	case EventB:
		return "B"
	case EventC:
		return "C"
	default:
		return "D"
	}
}
