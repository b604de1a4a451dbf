// Package media implements the per-track frame processing pipeline of the
// voicewire media core.
//
// The package turns raw transport-layer audio payloads into decoded PCM and
// runs an ordered, concurrently-shared chain of per-frame transformations
// over them, without exposing transport or codec details to application
// code.
//
// # Architecture Overview
//
// Every received audio packet flows through the same hot path:
//
//	RTP payload → ProcessorChain.ProcessFrame
//	                ├── TrackCodec decode (audio payload types only)
//	                ├── Resampler (decoder rate → chain rate)
//	                └── Processor 1 → Processor 2 → ... (chain order)
//
// DTMF telephone-event payloads are never audio codec payloads; they bypass
// this decode path entirely and are handled by the dtmf package on the same
// raw payload.
//
// # Core Components
//
// ## AudioFrame
//
// The unit of work. Its Samples field is a tagged union over decoded PCM,
// still-encoded RTP payload, or no audio at all:
//
//	frame := media.NewAudioFrame()
//	frame.Samples = media.RTPSamples{PayloadType: 0, Payload: payload}
//
// ## ProcessorChain
//
// One chain per media track, created at track setup and shared by
// reference across goroutines:
//
//	chain := media.NewProcessorChain(16000)
//	chain.AppendProcessor(analytics)
//	err := chain.ProcessFrame(&frame)
//
// ## Processor
//
// The open transformation contract; the chain orders and invokes
// implementations but does not interpret them. GainProcessor and
// AutoGainProcessor ship with the package as reference implementations.
//
// ## TrackCodec
//
// A payload-type keyed decoder dispatcher holding stateful per-payload
// decoder and resampler instances for the lifetime of a track.
//
// # Concurrency
//
// ProcessFrame may be called concurrently from multiple workers; calls on
// the same chain serialize behind its internal mutexes. Processors must not
// call chain mutation operations on their own chain from within
// ProcessFrame, or they will deadlock.
package media
