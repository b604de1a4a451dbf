package codec

// ITU-T G.711 mu-law companding.
//
// Decoding uses a pre-computed 256-entry lookup table; encoding uses the
// standard segment search over the biased magnitude. Each mu-law byte
// corresponds to exactly one 16-bit PCM sample, so both directions tolerate
// arbitrary input lengths.

const (
	muLawBias = 0x84
	muLawClip = 32635
)

// muLawSegmentEnds holds the upper bound of each mu-law segment over the
// biased magnitude.
var muLawSegmentEnds = [8]int32{0xFF, 0x1FF, 0x3FF, 0x7FF, 0xFFF, 0x1FFF, 0x3FFF, 0x7FFF}

// muLawDecodeTable maps each mu-law byte to its 16-bit PCM value.
var muLawDecodeTable = [256]int16{
	-32124, -31100, -30076, -29052, -28028, -27004, -25980, -24956,
	-23932, -22908, -21884, -20860, -19836, -18812, -17788, -16764,
	-15996, -15484, -14972, -14460, -13948, -13436, -12924, -12412,
	-11900, -11388, -10876, -10364, -9852, -9340, -8828, -8316,
	-7932, -7676, -7420, -7164, -6908, -6652, -6396, -6140,
	-5884, -5628, -5372, -5116, -4860, -4604, -4348, -4092,
	-3900, -3772, -3644, -3516, -3388, -3260, -3132, -3004,
	-2876, -2748, -2620, -2492, -2364, -2236, -2108, -1980,
	-1884, -1820, -1756, -1692, -1628, -1564, -1500, -1436,
	-1372, -1308, -1244, -1180, -1116, -1052, -988, -924,
	-876, -844, -812, -780, -748, -716, -684, -652,
	-620, -588, -556, -524, -492, -460, -428, -396,
	-372, -356, -340, -324, -308, -292, -276, -260,
	-244, -228, -212, -196, -180, -164, -148, -132,
	-120, -112, -104, -96, -88, -80, -72, -64,
	-56, -48, -40, -32, -24, -16, -8, 0,
	32124, 31100, 30076, 29052, 28028, 27004, 25980, 24956,
	23932, 22908, 21884, 20860, 19836, 18812, 17788, 16764,
	15996, 15484, 14972, 14460, 13948, 13436, 12924, 12412,
	11900, 11388, 10876, 10364, 9852, 9340, 8828, 8316,
	7932, 7676, 7420, 7164, 6908, 6652, 6396, 6140,
	5884, 5628, 5372, 5116, 4860, 4604, 4348, 4092,
	3900, 3772, 3644, 3516, 3388, 3260, 3132, 3004,
	2876, 2748, 2620, 2492, 2364, 2236, 2108, 1980,
	1884, 1820, 1756, 1692, 1628, 1564, 1500, 1436,
	1372, 1308, 1244, 1180, 1116, 1052, 988, 924,
	876, 844, 812, 780, 748, 716, 684, 652,
	620, 588, 556, 524, 492, 460, 428, 396,
	372, 356, 340, 324, 308, 292, 276, 260,
	244, 228, 212, 196, 180, 164, 148, 132,
	120, 112, 104, 96, 88, 80, 72, 64,
	56, 48, 40, 32, 24, 16, 8, 0,
}

// linearToMuLaw converts a 16-bit signed PCM sample to its mu-law byte.
func linearToMuLaw(pcm int16) byte {
	value := int32(pcm)
	var sign byte
	if value < 0 {
		value = -value
		sign = 0x80
	}
	if value > muLawClip {
		value = muLawClip
	}
	value += muLawBias

	segment := 7
	for i, end := range muLawSegmentEnds {
		if value <= end {
			segment = i
			break
		}
	}

	quantized := byte(segment)<<4 | byte((value>>(uint(segment)+3))&0x0F)
	return ^(sign | quantized)
}

// muLawToLinear converts a mu-law byte to its 16-bit signed PCM sample.
func muLawToLinear(mu byte) int16 {
	return muLawDecodeTable[mu]
}

// PCMUEncoder encodes 16-bit PCM into G.711 mu-law bytes.
type PCMUEncoder struct{}

// NewPCMUEncoder creates a mu-law encoder.
func NewPCMUEncoder() *PCMUEncoder {
	return &PCMUEncoder{}
}

// Encode converts each PCM sample into one mu-law byte.
// Empty input produces empty output.
func (e *PCMUEncoder) Encode(pcm []int16) ([]byte, error) {
	encoded := make([]byte, len(pcm))
	for i, sample := range pcm {
		encoded[i] = linearToMuLaw(sample)
	}
	return encoded, nil
}

// SampleRate returns the fixed G.711 sample rate.
func (e *PCMUEncoder) SampleRate() uint32 { return 8000 }

// Channels returns the fixed G.711 channel count.
func (e *PCMUEncoder) Channels() int { return 1 }

// PCMUDecoder decodes G.711 mu-law bytes into 16-bit PCM.
type PCMUDecoder struct{}

// NewPCMUDecoder creates a mu-law decoder.
func NewPCMUDecoder() *PCMUDecoder {
	return &PCMUDecoder{}
}

// Decode converts each mu-law byte into one PCM sample.
// Any byte value is a valid mu-law code, so decoding never fails.
func (d *PCMUDecoder) Decode(data []byte) ([]int16, error) {
	pcm := make([]int16, len(data))
	for i, b := range data {
		pcm[i] = muLawToLinear(b)
	}
	return pcm, nil
}

// SampleRate returns the fixed G.711 sample rate.
func (d *PCMUDecoder) SampleRate() uint32 { return 8000 }

// Channels returns the fixed G.711 channel count.
func (d *PCMUDecoder) Channels() int { return 1 }
