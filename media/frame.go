package media

// DefaultSampleRate is the sample rate assigned to frames that carry no
// decoded audio yet.
const DefaultSampleRate uint32 = 16000

// Samples is the tagged union of audio payload variants carried by an
// AudioFrame. Exactly three variants exist: PCMSamples, RTPSamples and
// EmptySamples.
type Samples interface {
	// IsEmpty reports whether the variant carries no audio data.
	IsEmpty() bool

	isSamples()
}

// PCMSamples carries decoded 16-bit signed audio samples.
type PCMSamples struct {
	Samples []int16
}

// RTPSamples carries a still-encoded transport payload. PayloadType
// distinguishes codec, DTMF and other payloads; the core never
// reinterprets the bytes until a decoder is selected.
type RTPSamples struct {
	PayloadType uint8
	Payload     []byte
}

// EmptySamples marks a frame with no audio present.
type EmptySamples struct{}

func (PCMSamples) isSamples()   {}
func (RTPSamples) isSamples()   {}
func (EmptySamples) isSamples() {}

// IsEmpty reports whether the PCM variant holds zero samples.
func (s PCMSamples) IsEmpty() bool { return len(s.Samples) == 0 }

// IsEmpty reports whether the RTP variant holds an empty payload.
func (s RTPSamples) IsEmpty() bool { return len(s.Payload) == 0 }

// IsEmpty always reports true for the empty variant.
func (EmptySamples) IsEmpty() bool { return true }

// AudioFrame is the unit of work flowing through the pipeline.
//
// Timestamp is a monotonically meaningful transport timestamp; the core
// carries it but never reinterprets it. SampleRate describes Samples only
// when they are in PCM form and must match the rate the owning chain was
// configured for.
type AudioFrame struct {
	// TrackID is the opaque stream identifier the frame belongs to.
	TrackID string
	// Samples holds the frame's audio payload variant.
	Samples Samples
	// Timestamp is the transport timestamp of the frame.
	Timestamp uint64
	// SampleRate is the sampling rate in Hz of PCM samples.
	SampleRate uint32
}

// NewAudioFrame returns the default frame: no track, no audio, timestamp
// zero, default sample rate.
func NewAudioFrame() AudioFrame {
	return AudioFrame{
		TrackID:    "",
		Samples:    EmptySamples{},
		Timestamp:  0,
		SampleRate: DefaultSampleRate,
	}
}

// IsEmpty reports whether the frame carries no audio data. A frame whose
// Samples field was never assigned counts as empty.
func (f *AudioFrame) IsEmpty() bool {
	if f.Samples == nil {
		return true
	}
	return f.Samples.IsEmpty()
}
