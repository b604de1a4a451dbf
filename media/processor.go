package media

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Processor is the contract for per-frame transformations registered on a
// ProcessorChain (noise suppression, recording, analytics, ...).
//
// Implementations mutate the frame in place or fail. They must be safe for
// the chain's serialization model: ProcessFrame is invoked while the chain
// holds its processor-list lock, so a processor must never call mutation
// operations on its own chain from inside ProcessFrame.
type Processor interface {
	// GetName returns a stable identifier for the processor kind. Chain
	// queries and removal address processors by this name, so all
	// instances of one processor kind must report the same name.
	GetName() string

	// ProcessFrame applies the transformation to the frame in place.
	ProcessFrame(frame *AudioFrame) error
}

// ProcessorChain owns the ordered transformation pipeline of one media
// track, together with the track's decoder dispatcher.
//
// A chain is created once per track and shared by reference: every handle
// observes the same processor list and codec state. The processor list and
// the codec dispatcher are guarded by separate mutexes; mutation calls are
// expected to be rare relative to ProcessFrame and may block briefly
// behind an in-flight frame.
type ProcessorChain struct {
	mu         sync.Mutex
	processors []Processor

	codecMu sync.Mutex
	codec   *TrackCodec

	sampleRate  uint32
	forceDecode bool
}

// NewProcessorChain creates a chain for a track operating at the given
// sample rate. Forced decoding starts enabled.
func NewProcessorChain(sampleRate uint32) *ProcessorChain {
	logrus.WithFields(logrus.Fields{
		"function":    "NewProcessorChain",
		"sample_rate": sampleRate,
	}).Info("Creating new processor chain")

	return &ProcessorChain{
		codec:       NewTrackCodec(),
		sampleRate:  sampleRate,
		forceDecode: true,
	}
}

// SampleRate returns the chain's fixed sample rate.
func (c *ProcessorChain) SampleRate() uint32 {
	return c.sampleRate
}

// ForceDecode reports whether frames are decoded even when no processor is
// registered.
func (c *ProcessorChain) ForceDecode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forceDecode
}

// SetForceDecode toggles decoding of frames on chains without processors.
// Disabling it lets tracks with no active transformation skip all codec
// work.
func (c *ProcessorChain) SetForceDecode(force bool) {
	c.mu.Lock()
	c.forceDecode = force
	c.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":     "SetForceDecode",
		"force_decode": force,
	}).Info("Updated chain force decode flag")
}

// InsertProcessor places a processor at the head of the chain so it
// executes first on subsequent frames.
func (c *ProcessorChain) InsertProcessor(processor Processor) {
	if processor == nil {
		logrus.WithFields(logrus.Fields{
			"function": "InsertProcessor",
			"error":    "nil processor",
		}).Error("Processor validation failed")
		return
	}

	c.mu.Lock()
	c.processors = append([]Processor{processor}, c.processors...)
	count := len(c.processors)
	c.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":        "InsertProcessor",
		"processor":       processor.GetName(),
		"processor_count": count,
	}).Info("Inserted processor at chain head")
}

// AppendProcessor places a processor at the tail of the chain so it
// executes last on subsequent frames.
func (c *ProcessorChain) AppendProcessor(processor Processor) {
	if processor == nil {
		logrus.WithFields(logrus.Fields{
			"function": "AppendProcessor",
			"error":    "nil processor",
		}).Error("Processor validation failed")
		return
	}

	c.mu.Lock()
	c.processors = append(c.processors, processor)
	count := len(c.processors)
	c.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":        "AppendProcessor",
		"processor":       processor.GetName(),
		"processor_count": count,
	}).Info("Appended processor at chain tail")
}

// HasProcessor reports whether any processor with the given name is
// currently registered. Distinct instances of the same kind are
// indistinguishable to this query. The call never mutates chain state.
func (c *ProcessorChain) HasProcessor(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, processor := range c.processors {
		if processor.GetName() == name {
			return true
		}
	}
	return false
}

// RemoveProcessor removes every processor with the given name from the
// chain.
func (c *ProcessorChain) RemoveProcessor(name string) {
	c.mu.Lock()
	kept := c.processors[:0]
	removed := 0
	for _, processor := range c.processors {
		if processor.GetName() == name {
			removed++
			continue
		}
		kept = append(kept, processor)
	}
	c.processors = kept
	c.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":  "RemoveProcessor",
		"processor": name,
		"removed":   removed,
	}).Info("Removed processors from chain")
}

// ProcessFrame runs one frame through the chain. Invoked once per audio
// frame, typically every 10-20ms.
//
// When forced decoding is off and the chain holds no processors, the frame
// is returned untouched. Otherwise a still-encoded frame with a recognized
// audio payload type is decoded to PCM at the chain's sample rate, and
// every registered processor runs in chain order against the same mutable
// frame. The first processor failure aborts the remaining chain; mutations
// applied before the failure are retained. No failure is fatal to the
// track.
func (c *ProcessorChain) ProcessFrame(frame *AudioFrame) error {
	if frame == nil {
		return ErrNilFrame
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Fast exit for tracks with no transformations and no forced decode.
	if !c.forceDecode && len(c.processors) == 0 {
		return nil
	}

	if rtpSamples, ok := frame.Samples.(RTPSamples); ok && IsAudioPayload(rtpSamples.PayloadType) {
		c.codecMu.Lock()
		pcm, err := c.codec.Decode(rtpSamples.PayloadType, rtpSamples.Payload, c.sampleRate)
		c.codecMu.Unlock()
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"function":     "ProcessFrame",
				"track_id":     frame.TrackID,
				"payload_type": rtpSamples.PayloadType,
				"error":        err.Error(),
			}).Error("Frame decode failed")
			return err
		}
		frame.Samples = PCMSamples{Samples: pcm}
		frame.SampleRate = c.sampleRate

		logrus.WithFields(logrus.Fields{
			"function":     "ProcessFrame",
			"track_id":     frame.TrackID,
			"payload_type": rtpSamples.PayloadType,
			"samples":      len(pcm),
			"sample_rate":  c.sampleRate,
		}).Debug("Decoded frame to PCM")
	}

	for _, processor := range c.processors {
		if err := processor.ProcessFrame(frame); err != nil {
			logrus.WithFields(logrus.Fields{
				"function":  "ProcessFrame",
				"track_id":  frame.TrackID,
				"processor": processor.GetName(),
				"error":     err.Error(),
			}).Error("Processor failed, aborting remaining chain")
			return fmt.Errorf("processor %q failed: %w", processor.GetName(), err)
		}
	}
	return nil
}
