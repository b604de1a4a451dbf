package codec

import (
	"math"
	"testing"
)

// sineWave generates a full-scale test signal.
func sineWave(n int) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(math.Sin(float64(i)*0.1) * 32767.0)
	}
	return samples
}

func TestPCMU_RoundTrip(t *testing.T) {
	encoder := NewPCMUEncoder()
	decoder := NewPCMUDecoder()

	samples := sineWave(160)

	encoded, err := encoder.Encode(samples)
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	if len(encoded) != len(samples) {
		t.Fatalf("Encode() produced %d bytes, want %d", len(encoded), len(samples))
	}

	decoded, err := decoder.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if len(decoded) != len(samples) {
		t.Fatalf("Decode() produced %d samples, want %d", len(decoded), len(samples))
	}

	// Companding is lossy; every sample must stay within tolerance.
	for i := range samples {
		diff := int32(samples[i]) - int32(decoded[i])
		if diff < 0 {
			diff = -diff
		}
		if diff >= 5000 {
			t.Errorf("sample %d mismatch: orig=%d dec=%d", i, samples[i], decoded[i])
		}
	}
}

func TestPCMA_RoundTrip(t *testing.T) {
	encoder := NewPCMAEncoder()
	decoder := NewPCMADecoder()

	samples := sineWave(160)

	encoded, err := encoder.Encode(samples)
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	decoded, err := decoder.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if len(decoded) != len(samples) {
		t.Fatalf("Decode() produced %d samples, want %d", len(decoded), len(samples))
	}

	for i := range samples {
		diff := int32(samples[i]) - int32(decoded[i])
		if diff < 0 {
			diff = -diff
		}
		if diff >= 5000 {
			t.Errorf("sample %d mismatch: orig=%d dec=%d", i, samples[i], decoded[i])
		}
	}
}

func TestG711_EmptyInput(t *testing.T) {
	tests := []struct {
		name    string
		encoder Encoder
		decoder Decoder
	}{
		{name: "PCMU", encoder: NewPCMUEncoder(), decoder: NewPCMUDecoder()},
		{name: "PCMA", encoder: NewPCMAEncoder(), decoder: NewPCMADecoder()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := tt.encoder.Encode(nil)
			if err != nil {
				t.Fatalf("Encode(nil) unexpected error: %v", err)
			}
			if len(encoded) != 0 {
				t.Errorf("Encode(nil) produced %d bytes, want 0", len(encoded))
			}

			decoded, err := tt.decoder.Decode(nil)
			if err != nil {
				t.Fatalf("Decode(nil) unexpected error: %v", err)
			}
			if len(decoded) != 0 {
				t.Errorf("Decode(nil) produced %d samples, want 0", len(decoded))
			}
		})
	}
}

func TestG711_ExtremeSamples(t *testing.T) {
	// Edge magnitudes must survive companding without overflow artifacts.
	extremes := []int16{0, 1, -1, 32767, -32768, 12345, -12345}

	for _, name := range []string{"PCMU", "PCMA"} {
		t.Run(name, func(t *testing.T) {
			var encoder Encoder
			var decoder Decoder
			if name == "PCMU" {
				encoder, decoder = NewPCMUEncoder(), NewPCMUDecoder()
			} else {
				encoder, decoder = NewPCMAEncoder(), NewPCMADecoder()
			}

			encoded, err := encoder.Encode(extremes)
			if err != nil {
				t.Fatalf("Encode() unexpected error: %v", err)
			}
			decoded, err := decoder.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			for i, orig := range extremes {
				diff := int32(orig) - int32(decoded[i])
				if diff < 0 {
					diff = -diff
				}
				if diff >= 5000 {
					t.Errorf("sample %d mismatch: orig=%d dec=%d", i, orig, decoded[i])
				}
			}
		})
	}
}
