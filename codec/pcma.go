package codec

// ITU-T G.711 A-law companding.
//
// Uses the canonical segment scheme over the 13-bit magnitude domain. Each
// A-law byte corresponds to exactly one 16-bit PCM sample, so both
// directions tolerate arbitrary input lengths.

const (
	aLawQuantMask = 0x0F
	aLawSegMask   = 0x70
	aLawSegShift  = 4
	aLawSignBit   = 0x80
)

// aLawSegmentEnds holds the upper bound of each A-law segment over the
// 13-bit magnitude.
var aLawSegmentEnds = [8]int32{0x1F, 0x3F, 0x7F, 0xFF, 0x1FF, 0x3FF, 0x7FF, 0xFFF}

// linearToALaw converts a 16-bit signed PCM sample to its A-law byte.
func linearToALaw(pcm int16) byte {
	value := int32(pcm) >> 3 // A-law operates on 13-bit magnitudes
	var mask byte = 0xD5     // sign bit set, even bits inverted
	if value < 0 {
		mask = 0x55
		value = -value - 1
	}

	segment := 8
	for i, end := range aLawSegmentEnds {
		if value <= end {
			segment = i
			break
		}
	}
	if segment >= 8 {
		// Out of range: return maximum value
		return 0x7F ^ mask
	}

	aval := byte(segment) << aLawSegShift
	if segment < 2 {
		aval |= byte(value>>1) & aLawQuantMask
	} else {
		aval |= byte(value>>uint(segment)) & aLawQuantMask
	}
	return aval ^ mask
}

// aLawToLinear converts an A-law byte to its 16-bit signed PCM sample.
func aLawToLinear(a byte) int16 {
	a ^= 0x55

	t := int32(a&aLawQuantMask) << 4
	segment := (a & aLawSegMask) >> aLawSegShift
	switch segment {
	case 0:
		t += 8
	case 1:
		t += 0x108
	default:
		t += 0x108
		t <<= segment - 1
	}

	if a&aLawSignBit != 0 {
		return int16(t)
	}
	return int16(-t)
}

// PCMAEncoder encodes 16-bit PCM into G.711 A-law bytes.
type PCMAEncoder struct{}

// NewPCMAEncoder creates an A-law encoder.
func NewPCMAEncoder() *PCMAEncoder {
	return &PCMAEncoder{}
}

// Encode converts each PCM sample into one A-law byte.
// Empty input produces empty output.
func (e *PCMAEncoder) Encode(pcm []int16) ([]byte, error) {
	encoded := make([]byte, len(pcm))
	for i, sample := range pcm {
		encoded[i] = linearToALaw(sample)
	}
	return encoded, nil
}

// SampleRate returns the fixed G.711 sample rate.
func (e *PCMAEncoder) SampleRate() uint32 { return 8000 }

// Channels returns the fixed G.711 channel count.
func (e *PCMAEncoder) Channels() int { return 1 }

// PCMADecoder decodes G.711 A-law bytes into 16-bit PCM.
type PCMADecoder struct{}

// NewPCMADecoder creates an A-law decoder.
func NewPCMADecoder() *PCMADecoder {
	return &PCMADecoder{}
}

// Decode converts each A-law byte into one PCM sample.
// Any byte value is a valid A-law code, so decoding never fails.
func (d *PCMADecoder) Decode(data []byte) ([]int16, error) {
	pcm := make([]int16, len(data))
	for i, b := range data {
		pcm[i] = aLawToLinear(b)
	}
	return pcm, nil
}

// SampleRate returns the fixed G.711 sample rate.
func (d *PCMADecoder) SampleRate() uint32 { return 8000 }

// Channels returns the fixed G.711 channel count.
func (d *PCMADecoder) Channels() int { return 1 }
