package media

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Processor names for the bundled effect processors, used with
// HasProcessor/RemoveProcessor.
const (
	GainProcessorName     = "gain"
	AutoGainProcessorName = "auto_gain"
)

// GainProcessor applies linear gain (volume) control to PCM frames.
//
// Gain values: 0.0 = silence, 1.0 = no change, >1.0 = amplification.
// Scaled samples are clipped to the int16 range to prevent overflow
// distortion. Frames not in PCM form pass through untouched.
type GainProcessor struct {
	gain float64
}

// NewGainProcessor creates a gain control processor.
//
// The accepted range is 0.0 to 4.0 (silence to +12dB).
func NewGainProcessor(gain float64) (*GainProcessor, error) {
	logrus.WithFields(logrus.Fields{
		"function": "NewGainProcessor",
		"gain":     gain,
	}).Info("Creating new gain processor")

	if gain < 0.0 {
		logrus.WithFields(logrus.Fields{
			"function": "NewGainProcessor",
			"gain":     gain,
			"error":    "gain cannot be negative",
		}).Error("Gain validation failed")
		return nil, fmt.Errorf("%w: gain cannot be negative: %f", ErrInvalidGain, gain)
	}
	if gain > 4.0 {
		logrus.WithFields(logrus.Fields{
			"function": "NewGainProcessor",
			"gain":     gain,
			"error":    "gain too high (max 4.0)",
		}).Error("Gain validation failed")
		return nil, fmt.Errorf("%w: gain too high (max 4.0): %f", ErrInvalidGain, gain)
	}

	return &GainProcessor{gain: gain}, nil
}

// GetName returns the stable processor identifier.
func (g *GainProcessor) GetName() string { return GainProcessorName }

// GetGain returns the configured gain multiplier.
func (g *GainProcessor) GetGain() float64 { return g.gain }

// ProcessFrame multiplies each PCM sample by the gain factor in place.
func (g *GainProcessor) ProcessFrame(frame *AudioFrame) error {
	pcm, ok := frame.Samples.(PCMSamples)
	if !ok || len(pcm.Samples) == 0 {
		return nil
	}

	clipped := 0
	for i, sample := range pcm.Samples {
		scaled := float64(sample) * g.gain
		switch {
		case scaled > 32767.0:
			pcm.Samples[i] = 32767
			clipped++
		case scaled < -32768.0:
			pcm.Samples[i] = -32768
			clipped++
		default:
			pcm.Samples[i] = int16(scaled)
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":     "GainProcessor.ProcessFrame",
		"track_id":     frame.TrackID,
		"sample_count": len(pcm.Samples),
		"gain":         g.gain,
		"clipped":      clipped,
	}).Debug("Applied gain to frame")

	return nil
}

// AutoGainProcessor applies automatic gain control (AGC) to PCM frames.
//
// A smoothed peak follower drives the gain toward a target listening
// level. Attack is faster than release, tuned for speech so level changes
// do not pump. Frames not in PCM form pass through untouched.
type AutoGainProcessor struct {
	targetLevel float64 // target peak level (fraction of full scale)
	currentGain float64
	peakLevel   float64 // smoothed peak level
	attackRate  float64
	releaseRate float64
	minGain     float64
	maxGain     float64
}

// NewAutoGainProcessor creates an AGC processor with defaults tuned for
// voice communication.
func NewAutoGainProcessor() *AutoGainProcessor {
	agc := &AutoGainProcessor{
		targetLevel: 0.3,
		currentGain: 1.0,
		peakLevel:   0.0,
		attackRate:  0.2,
		releaseRate: 0.05,
		minGain:     0.1,
		maxGain:     4.0,
	}

	logrus.WithFields(logrus.Fields{
		"function":     "NewAutoGainProcessor",
		"target_level": agc.targetLevel,
		"min_gain":     agc.minGain,
		"max_gain":     agc.maxGain,
	}).Info("Auto gain processor created with default settings")

	return agc
}

// GetName returns the stable processor identifier.
func (a *AutoGainProcessor) GetName() string { return AutoGainProcessorName }

// ProcessFrame adjusts the frame's PCM samples toward the target level.
func (a *AutoGainProcessor) ProcessFrame(frame *AudioFrame) error {
	pcm, ok := frame.Samples.(PCMSamples)
	if !ok || len(pcm.Samples) == 0 {
		return nil
	}

	peak := 0.0
	for _, sample := range pcm.Samples {
		level := math.Abs(float64(sample)) / 32768.0
		if level > peak {
			peak = level
		}
	}

	// Smooth the peak follower so single transients do not slam the gain.
	a.peakLevel = a.peakLevel*0.9 + peak*0.1

	if a.peakLevel > 0.001 {
		desired := a.targetLevel / a.peakLevel
		if desired < a.minGain {
			desired = a.minGain
		}
		if desired > a.maxGain {
			desired = a.maxGain
		}
		rate := a.releaseRate
		if desired > a.currentGain {
			rate = a.attackRate
		}
		a.currentGain += (desired - a.currentGain) * rate
	}

	for i, sample := range pcm.Samples {
		scaled := float64(sample) * a.currentGain
		switch {
		case scaled > 32767.0:
			pcm.Samples[i] = 32767
		case scaled < -32768.0:
			pcm.Samples[i] = -32768
		default:
			pcm.Samples[i] = int16(scaled)
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":     "AutoGainProcessor.ProcessFrame",
		"track_id":     frame.TrackID,
		"sample_count": len(pcm.Samples),
		"peak_level":   a.peakLevel,
		"current_gain": a.currentGain,
	}).Debug("Applied automatic gain control to frame")

	return nil
}
