// Package codec provides the audio codec contract and factory for the
// voicewire media pipeline.
//
// The package defines a uniform Encoder/Decoder contract over the three
// telephony codecs the pipeline speaks, plus a type-keyed factory so that
// callers construct correctly-initialized instances without knowing codec
// internals:
//
//   - PCMU: ITU-T G.711 mu-law companding, 8000 Hz mono
//   - PCMA: ITU-T G.711 A-law companding, 8000 Hz mono
//   - G722: ITU-T G.722 sub-band ADPCM, 16000 Hz mono
//
// # Architecture Overview
//
// All codecs flow through the same two interfaces:
//
//	decoder, err := codec.NewDecoder(codec.TypePCMU)
//	pcm, err := decoder.Decode(payload)
//
//	encoder, err := codec.NewEncoder(codec.TypeG722)
//	data, err := encoder.Encode(pcm)
//
// Encoder and decoder instances may hold internal state (the G.722 ADPCM
// predictor, residual unaligned samples) that must persist across calls for
// a given stream. Instances are therefore per-stream and are not safe for
// concurrent use without external synchronization; the processor chain in
// the media package guards its codec instances with a dedicated mutex.
//
// # Payload Type Mapping
//
// The static RTP payload type assignments for the supported codecs
// (RFC 3551: PCMU=0, PCMA=8, G722=9) are exposed through TypeFromPayload
// and Type.PayloadType so transport-facing code can recognize audio
// payloads without hard-coding numbers.
//
// Codec negotiation and session setup are out of scope; the factory only
// executes encode/decode once a codec type is already known.
package codec
