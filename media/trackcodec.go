package media

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/voicewire/voicewire/codec"
)

// IsAudioPayload reports whether the payload type is one of the recognized
// audio codecs. DTMF telephone-event payloads and other dynamic payload
// types are not audio and must not enter the decode path.
func IsAudioPayload(payloadType uint8) bool {
	_, ok := codec.TypeFromPayload(payloadType)
	return ok
}

// TrackCodec is a decoder dispatcher keyed by RTP payload type.
//
// Decoder instances are created on first use per payload type and persist
// for the life of the track, preserving codec state (the G.722 ADPCM
// predictor) across packets. When a decoder's native rate differs from the
// requested target rate, the decoded PCM is resampled with a matching
// per-payload-type stateful resampler.
//
// TrackCodec is not safe for concurrent use; ProcessorChain guards its
// instance with a dedicated mutex.
type TrackCodec struct {
	decoders   map[uint8]codec.Decoder
	resamplers map[uint8]*Resampler
}

// NewTrackCodec creates an empty decoder dispatcher.
func NewTrackCodec() *TrackCodec {
	logrus.WithFields(logrus.Fields{
		"function": "NewTrackCodec",
	}).Info("Creating new track codec dispatcher")

	return &TrackCodec{
		decoders:   make(map[uint8]codec.Decoder),
		resamplers: make(map[uint8]*Resampler),
	}
}

// Decode converts one encoded payload into PCM at targetRate.
//
// Returns ErrUnknownPayloadType when the payload type is not a recognized
// audio codec; codec decode failures are propagated verbatim.
func (tc *TrackCodec) Decode(payloadType uint8, payload []byte, targetRate uint32) ([]int16, error) {
	codecType, ok := codec.TypeFromPayload(payloadType)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"function":     "TrackCodec.Decode",
			"payload_type": payloadType,
			"error":        "not an audio payload type",
		}).Error("Payload type validation failed")
		return nil, fmt.Errorf("%w: %d", ErrUnknownPayloadType, payloadType)
	}

	decoder, err := tc.decoderFor(payloadType, codecType)
	if err != nil {
		return nil, err
	}

	pcm, err := decoder.Decode(payload)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function":     "TrackCodec.Decode",
			"payload_type": payloadType,
			"codec_type":   codecType.String(),
			"error":        err.Error(),
		}).Error("Payload decode failed")
		return nil, err
	}

	if decoder.SampleRate() == targetRate || len(pcm) == 0 {
		return pcm, nil
	}

	resampler, err := tc.resamplerFor(payloadType, decoder.SampleRate(), targetRate)
	if err != nil {
		return nil, err
	}
	resampled, err := resampler.Resample(pcm)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function":     "TrackCodec.Decode",
			"payload_type": payloadType,
			"error":        err.Error(),
		}).Error("Decoded audio resampling failed")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function":     "TrackCodec.Decode",
		"payload_type": payloadType,
		"codec_type":   codecType.String(),
		"decoded":      len(pcm),
		"resampled":    len(resampled),
		"target_rate":  targetRate,
	}).Debug("Decoded and resampled audio payload")

	return resampled, nil
}

// decoderFor returns the persistent decoder for a payload type, creating
// it on first use.
func (tc *TrackCodec) decoderFor(payloadType uint8, codecType codec.Type) (codec.Decoder, error) {
	if decoder, ok := tc.decoders[payloadType]; ok {
		return decoder, nil
	}

	decoder, err := codec.NewDecoder(codecType)
	if err != nil {
		return nil, fmt.Errorf("create decoder for payload type %d: %w", payloadType, err)
	}

	logrus.WithFields(logrus.Fields{
		"function":     "TrackCodec.decoderFor",
		"payload_type": payloadType,
		"codec_type":   codecType.String(),
		"sample_rate":  decoder.SampleRate(),
	}).Info("Created decoder for track")

	tc.decoders[payloadType] = decoder
	return decoder, nil
}

// resamplerFor returns the persistent resampler for a payload type,
// creating or replacing it when the rates change.
func (tc *TrackCodec) resamplerFor(payloadType uint8, inputRate, outputRate uint32) (*Resampler, error) {
	if resampler, ok := tc.resamplers[payloadType]; ok {
		if resampler.InputRate() == inputRate && resampler.OutputRate() == outputRate {
			return resampler, nil
		}
	}

	resampler, err := NewResampler(ResamplerConfig{
		InputRate:  inputRate,
		OutputRate: outputRate,
	})
	if err != nil {
		return nil, fmt.Errorf("create resampler for payload type %d: %w", payloadType, err)
	}
	tc.resamplers[payloadType] = resampler
	return resampler, nil
}
