package media

import (
	"github.com/pion/rtp"
	"github.com/sirupsen/logrus"
)

// FrameFromPacket builds an AudioFrame in RTP form from a demuxed RTP
// packet.
//
// The payload stays encoded; payload type and timestamp are carried over
// so the frame can enter ProcessorChain.ProcessFrame or be offered to a
// DTMF detector. A nil packet yields the default empty frame for the
// track.
func FrameFromPacket(trackID string, packet *rtp.Packet) AudioFrame {
	if packet == nil {
		logrus.WithFields(logrus.Fields{
			"function": "FrameFromPacket",
			"track_id": trackID,
			"error":    "nil packet",
		}).Error("Packet validation failed")
		frame := NewAudioFrame()
		frame.TrackID = trackID
		return frame
	}

	return AudioFrame{
		TrackID: trackID,
		Samples: RTPSamples{
			PayloadType: packet.PayloadType,
			Payload:     packet.Payload,
		},
		Timestamp:  uint64(packet.Timestamp),
		SampleRate: DefaultSampleRate,
	}
}
