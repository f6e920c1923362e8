package lpc10

import (
	"math"
	"testing"
)

func TestDecodeSilentThenStopProducesZeroFrame(t *testing.T) {
	codes := Codes{{Energy: 0x0}, {Energy: 0xF}}
	buf, err := Decode(codes)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if buf.FrameCount != 200 {
		t.Fatalf("frame count = %d, want 200", buf.FrameCount)
	}
	for i, v := range buf.Samples {
		if v != 0 {
			t.Fatalf("sample %d = %v, want 0", i, v)
		}
	}
}

func TestDecodeStopOnlyProducesEmptyBuffer(t *testing.T) {
	codes := Codes{{Energy: 0xF}}
	buf, err := Decode(codes)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if buf.FrameCount != 0 {
		t.Fatalf("frame count = %d, want 0", buf.FrameCount)
	}
}

func TestDecodeAlwaysYields8kHzMono(t *testing.T) {
	codes := Codes{{Energy: 8, Pitch: 30, K: [10]uint8{16, 16, 8, 8, 8, 8, 8, 4, 4, 4}}, {Energy: 0xF}}
	buf, err := Decode(codes)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if buf.SampleRate != 8000 || buf.Channels != 1 {
		t.Fatalf("got rate=%d channels=%d, want 8000/1", buf.SampleRate, buf.Channels)
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	settings := DefaultSettings()

	if _, err := Encode(Buffer{SampleRate: 8000, Channels: 3, FrameCount: 1, Samples: []float32{0}}, settings); err != ErrInvalidChannels {
		t.Fatalf("got %v, want ErrInvalidChannels", err)
	}
	if _, err := Encode(Buffer{SampleRate: 4000, Channels: 1, FrameCount: 1, Samples: []float32{0}}, settings); err != ErrInvalidSampleRate {
		t.Fatalf("got %v, want ErrInvalidSampleRate", err)
	}
	if _, err := Encode(Buffer{SampleRate: 8000, Channels: 1, FrameCount: 0}, settings); err != ErrEmptyBuffer {
		t.Fatalf("got %v, want ErrEmptyBuffer", err)
	}
}

func TestEncodeOnToneProducesLegalFrames(t *testing.T) {
	const frames = 1600 // 200ms at 8kHz
	samples := make([]float32, frames)
	for i := range samples {
		samples[i] = float32(math.Sin(2 * math.Pi * 400 * float64(i) / 8000))
	}

	codes, err := Encode(Buffer{SampleRate: 8000, Channels: 1, FrameCount: frames, Samples: samples}, DefaultSettings())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(codes) < 2 {
		t.Fatalf("expected multiple frames, got %d", len(codes))
	}
	if codes[len(codes)-1].Energy != 0xF {
		t.Fatalf("last frame energy = %#x, want stop-frame 0xF", codes[len(codes)-1].Energy)
	}

	for _, c := range codes {
		if ClampCode(c) != c {
			t.Fatalf("analyser produced a Code violating bit-width invariants: %+v", c)
		}
	}
}

func TestClampIdempotent(t *testing.T) {
	c := Code{Energy: 200, Repeat: true, Pitch: 200, K: [10]uint8{200, 200, 200, 200, 200, 200, 200, 200, 200, 200}}
	once := ClampCode(c)
	twice := ClampCode(once)
	if once != twice {
		t.Fatalf("ClampCode not idempotent: once=%+v twice=%+v", once, twice)
	}
}

func TestPackUnpackRoundTripsWithStopFrame(t *testing.T) {
	// A repeat frame stops after the pitch field (12 bits); together with
	// the 4-bit stop frame that's exactly 2 bytes, so nothing truncates.
	codes := Codes{
		{Energy: 8, Repeat: true, Pitch: 30},
		{Energy: 0xF},
	}

	packed, err := PackTMS5220(codes)
	if err != nil {
		t.Fatalf("PackTMS5220: %v", err)
	}

	got, _, err := UnpackTMS5220(packed)
	if err != nil {
		t.Fatalf("UnpackTMS5220: %v", err)
	}

	stopIdx := -1
	for i, c := range got {
		if c.Energy == 0xF {
			stopIdx = i
			break
		}
	}
	if stopIdx == -1 {
		t.Fatal("expected a stop-frame in the unpacked stream")
	}
}
