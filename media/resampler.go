package media

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Resampler provides mono sample rate conversion by linear interpolation.
//
// Linear interpolation gives good quality for voice-band audio without
// external dependencies. The resampler carries its fractional read
// position and the last input sample across calls, so a continuous stream
// may be fed chunk by chunk without boundary artifacts.
type Resampler struct {
	inputRate  uint32
	outputRate uint32
	last       int16   // final sample of the previous chunk
	hasLast    bool
	position   float64 // fractional read position into the input stream
}

// ResamplerConfig holds configuration for creating a resampler.
type ResamplerConfig struct {
	InputRate  uint32 // Input sample rate in Hz
	OutputRate uint32 // Output sample rate in Hz
}

// NewResampler creates a new mono resampler instance.
func NewResampler(config ResamplerConfig) (*Resampler, error) {
	logrus.WithFields(logrus.Fields{
		"function":    "NewResampler",
		"input_rate":  config.InputRate,
		"output_rate": config.OutputRate,
	}).Info("Creating new audio resampler")

	if config.InputRate == 0 || config.OutputRate == 0 {
		logrus.WithFields(logrus.Fields{
			"function":    "NewResampler",
			"input_rate":  config.InputRate,
			"output_rate": config.OutputRate,
			"error":       "invalid sample rates",
		}).Error("Sample rate validation failed")
		return nil, fmt.Errorf("%w: input=%d, output=%d",
			ErrInvalidSampleRate, config.InputRate, config.OutputRate)
	}

	return &Resampler{
		inputRate:  config.InputRate,
		outputRate: config.OutputRate,
	}, nil
}

// InputRate returns the configured input sample rate.
func (r *Resampler) InputRate() uint32 { return r.inputRate }

// OutputRate returns the configured output sample rate.
func (r *Resampler) OutputRate() uint32 { return r.outputRate }

// Resample converts one chunk of mono samples to the output rate.
//
// Equal input and output rates pass samples through unchanged. Otherwise
// the chunk is interpolated against the carried tail of the previous
// chunk, and the read position is preserved for the next call.
func (r *Resampler) Resample(samples []int16) ([]int16, error) {
	if len(samples) == 0 {
		return []int16{}, nil
	}
	if r.inputRate == r.outputRate {
		out := make([]int16, len(samples))
		copy(out, samples)
		return out, nil
	}

	source := samples
	if r.hasLast {
		source = make([]int16, 0, len(samples)+1)
		source = append(source, r.last)
		source = append(source, samples...)
	}

	step := float64(r.inputRate) / float64(r.outputRate)
	capacity := int(float64(len(samples))/step) + 2
	output := make([]int16, 0, capacity)

	position := r.position
	for {
		index := int(position)
		if index >= len(source)-1 {
			break
		}
		frac := position - float64(index)
		interpolated := float64(source[index])*(1.0-frac) + float64(source[index+1])*frac
		output = append(output, int16(interpolated))
		position += step
	}

	// Carry state for the next chunk.
	r.last = source[len(source)-1]
	r.hasLast = true
	r.position = position - float64(len(source)-1)

	logrus.WithFields(logrus.Fields{
		"function":    "Resampler.Resample",
		"input_size":  len(samples),
		"output_size": len(output),
	}).Debug("Resampled audio chunk")

	return output, nil
}

// Reset clears the carried interpolation state.
func (r *Resampler) Reset() {
	r.last = 0
	r.hasLast = false
	r.position = 0
}

// ResampleMono converts a complete mono sample sequence from inputRate to
// outputRate in one shot.
//
// Unlike Resampler, this is a pure function with no carried state; it is
// intended for whole-buffer conversion outside the streaming path.
func ResampleMono(samples []int16, inputRate, outputRate uint32) []int16 {
	if len(samples) == 0 || inputRate == 0 || outputRate == 0 || inputRate == outputRate {
		out := make([]int16, len(samples))
		copy(out, samples)
		return out
	}

	outLen := int(int64(len(samples)) * int64(outputRate) / int64(inputRate))
	if outLen == 0 {
		return []int16{}
	}

	step := float64(inputRate) / float64(outputRate)
	output := make([]int16, outLen)
	for i := range output {
		position := float64(i) * step
		index := int(position)
		if index >= len(samples)-1 {
			output[i] = samples[len(samples)-1]
			continue
		}
		frac := position - float64(index)
		output[i] = int16(float64(samples[index])*(1.0-frac) + float64(samples[index+1])*frac)
	}
	return output
}
