package media

import (
	"math"
	"testing"

	"github.com/pion/rtp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicewire/voicewire/codec"
	"github.com/voicewire/voicewire/dtmf"
)

// TestPipeline_RTPToProcessedPCM exercises the full hot path: a demuxed
// RTP packet enters as an encoded frame, is decoded to PCM at the chain
// rate, and runs through a registered transformation.
func TestPipeline_RTPToProcessedPCM(t *testing.T) {
	encoder, err := codec.NewEncoder(codec.TypePCMU)
	require.NoError(t, err)

	samples := make([]int16, 160)
	for i := range samples {
		samples[i] = int16(math.Sin(float64(i)*0.1) * 8000.0)
	}
	payload, err := encoder.Encode(samples)
	require.NoError(t, err)

	packet := &rtp.Packet{
		Header: rtp.Header{
			PayloadType: codec.PayloadTypePCMU,
			Timestamp:   160,
		},
		Payload: payload,
	}

	chain := NewProcessorChain(16000)
	gain, err := NewGainProcessor(2.0)
	require.NoError(t, err)
	chain.AppendProcessor(gain)

	frame := FrameFromPacket("session-1/audio", packet)
	require.NoError(t, chain.ProcessFrame(&frame))

	pcm, ok := frame.Samples.(PCMSamples)
	require.True(t, ok, "frame should be decoded to PCM")
	assert.Equal(t, uint32(16000), frame.SampleRate)
	assert.Equal(t, uint64(160), frame.Timestamp)
	assert.InDelta(t, 320, len(pcm.Samples), 4, "8kHz payload resampled to 16kHz chain rate")

	var peak int16
	for _, s := range pcm.Samples {
		if s > peak {
			peak = s
		}
	}
	assert.Greater(t, int(peak), 10000, "gain processor should have amplified the signal")
}

// TestPipeline_DTMFBypassesAudioDecode verifies that telephone-event
// payloads flow to the DTMF detector while the audio chain leaves them
// untouched.
func TestPipeline_DTMFBypassesAudioDecode(t *testing.T) {
	chain := NewProcessorChain(16000)
	detector := dtmf.NewDetector()

	packet := &rtp.Packet{
		Header: rtp.Header{
			PayloadType: 101,
			Timestamp:   4800,
		},
		Payload: []byte{dtmf.Event7, 0x80, 10, 200},
	}

	frame := FrameFromPacket("session-1/audio", packet)
	require.NoError(t, chain.ProcessFrame(&frame))

	// The audio chain must not decode a telephone-event payload.
	rtpSamples, ok := frame.Samples.(RTPSamples)
	require.True(t, ok, "DTMF frame must stay in RTP form")

	digit, ok := detector.DetectRTP(rtpSamples.PayloadType, rtpSamples.Payload)
	require.True(t, ok)
	assert.Equal(t, "7", digit)

	// The retransmitted end packet is absorbed.
	_, ok = detector.DetectRTP(rtpSamples.PayloadType, rtpSamples.Payload)
	assert.False(t, ok)
}

// TestPipeline_G722Track runs a wide-band track end to end at its native
// rate.
func TestPipeline_G722Track(t *testing.T) {
	encoder, err := codec.NewEncoder(codec.TypeG722)
	require.NoError(t, err)

	samples := make([]int16, 320)
	for i := range samples {
		samples[i] = int16(math.Sin(float64(i)*0.05) * 16000.0)
	}
	payload, err := encoder.Encode(samples)
	require.NoError(t, err)
	require.Len(t, payload, 160)

	chain := NewProcessorChain(16000)
	frame := NewAudioFrame()
	frame.TrackID = "session-2/audio"
	frame.Samples = RTPSamples{PayloadType: codec.PayloadTypeG722, Payload: payload}

	require.NoError(t, chain.ProcessFrame(&frame))

	pcm, ok := frame.Samples.(PCMSamples)
	require.True(t, ok)
	assert.Len(t, pcm.Samples, 320, "G.722 decode preserves sequence length at native rate")
	assert.Equal(t, uint32(16000), frame.SampleRate)
}
