package codec

import (
	g722 "github.com/gotranspile/g722"
	"github.com/sirupsen/logrus"
)

// ITU-T G.722 sub-band ADPCM at the standard 64 kbit/s RTP mode
// (16000 Hz audio, one octet per sample pair).
//
// The ADPCM predictor state lives inside the wrapped gotranspile/g722
// encoder/decoder and must persist across calls for a given stream, so
// instances are strictly per-stream.

const g722Rate = g722.Rate64000

// G722Encoder encodes 16-bit PCM at 16000 Hz into G.722 octets.
//
// G.722 consumes samples in pairs; a trailing unaligned sample is buffered
// and prepended to the next Encode call.
type G722Encoder struct {
	enc     *g722.Encoder
	pending []int16
}

// NewG722Encoder creates a G.722 encoder in 64 kbit/s mode.
func NewG722Encoder() *G722Encoder {
	logrus.WithFields(logrus.Fields{
		"function": "NewG722Encoder",
		"rate":     int(g722Rate),
	}).Debug("Creating G.722 encoder")

	return &G722Encoder{
		enc: g722.NewEncoder(g722Rate, 0),
	}
}

// Encode converts PCM samples into G.722 octets.
//
// Empty input produces empty output. An odd trailing sample is held back
// in internal state and emitted with the next call.
func (e *G722Encoder) Encode(pcm []int16) ([]byte, error) {
	input := pcm
	if len(e.pending) > 0 {
		input = make([]int16, 0, len(e.pending)+len(pcm))
		input = append(input, e.pending...)
		input = append(input, pcm...)
		e.pending = nil
	}
	if len(input)%2 != 0 {
		e.pending = []int16{input[len(input)-1]}
		input = input[:len(input)-1]
	}
	if len(input) == 0 {
		return []byte{}, nil
	}
	out := make([]byte, len(input))
	n := e.enc.Encode(out, input)
	return out[:n], nil
}

// SampleRate returns the fixed G.722 sample rate.
func (e *G722Encoder) SampleRate() uint32 { return 16000 }

// Channels returns the fixed G.722 channel count.
func (e *G722Encoder) Channels() int { return 1 }

// G722Decoder decodes G.722 octets into 16-bit PCM at 16000 Hz.
type G722Decoder struct {
	dec *g722.Decoder
}

// NewG722Decoder creates a G.722 decoder in 64 kbit/s mode.
func NewG722Decoder() *G722Decoder {
	logrus.WithFields(logrus.Fields{
		"function": "NewG722Decoder",
		"rate":     int(g722Rate),
	}).Debug("Creating G.722 decoder")

	return &G722Decoder{
		dec: g722.NewDecoder(g722Rate, 0),
	}
}

// Decode converts G.722 octets into PCM samples.
//
// Any octet sequence is decodable; truncated input yields proportionally
// fewer samples rather than an error.
func (d *G722Decoder) Decode(data []byte) ([]int16, error) {
	if len(data) == 0 {
		return []int16{}, nil
	}
	out := make([]int16, len(data)*2)
	n := d.dec.Decode(out, data)
	return out[:n], nil
}

// SampleRate returns the fixed G.722 sample rate.
func (d *G722Decoder) SampleRate() uint32 { return 16000 }

// Channels returns the fixed G.722 channel count.
func (d *G722Decoder) Channels() int { return 1 }
