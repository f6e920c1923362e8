package synth

import (
	"testing"

	"github.com/speechcore/lpc10/internal/bitstream"
)

func TestStepSilentFrameProducesZeros(t *testing.T) {
	s := New()
	out := s.Step(bitstream.Code{Energy: bitstream.EnergyZero}, nil)

	if len(out) != SamplesPerFrame {
		t.Fatalf("got %d samples, want %d", len(out), SamplesPerFrame)
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("sample %d = %v, want 0", i, v)
		}
	}
}

func TestNoiseLFSRHasPeriod32767(t *testing.T) {
	s := New()
	s.noise = 1

	seen := make(map[uint16]bool)
	for i := 0; i < 32767; i++ {
		if seen[s.noise] {
			t.Fatalf("LFSR repeated state after only %d steps, want 32767", i)
		}
		seen[s.noise] = true
		s.advanceNoise()
	}
	if s.noise != 1 {
		t.Fatalf("LFSR did not return to seed 1 after 32767 steps, got %d", s.noise)
	}
}

func TestNoiseLFSRReseededSequenceIsReproducible(t *testing.T) {
	a := New()
	b := New()
	a.noise, b.noise = 1, 1

	for i := 0; i < 100; i++ {
		a.advanceNoise()
	}
	for i := 0; i < 100; i++ {
		b.advanceNoise()
	}
	if a.noise != b.noise {
		t.Fatalf("two LFSRs seeded identically diverged: %d vs %d", a.noise, b.noise)
	}
}

func TestVoicedFrameAdvancesLatticeWithoutNaN(t *testing.T) {
	s := New()
	c := bitstream.Code{Energy: 8, Pitch: 30, K: [10]uint8{16, 16, 8, 8, 8, 8, 8, 4, 4, 4}}
	out := s.Step(c, nil)
	if len(out) != SamplesPerFrame {
		t.Fatalf("got %d samples, want %d", len(out), SamplesPerFrame)
	}
	for i, v := range out {
		if v != v { // NaN check
			t.Fatalf("sample %d is NaN", i)
		}
	}
}
