package lpc10

import (
	"github.com/speechcore/lpc10/internal/bitstream"
	"github.com/speechcore/lpc10/internal/synth"
)

// Decode runs the synthesiser over codes and returns the resulting PCM
// buffer, always at 8000 Hz mono. Decode stops at the first frame whose
// Energy == 0xF; it never errors, matching the codec's stop-frame being a
// normal termination rather than a failure.
func Decode(codes Codes) (Buffer, error) {
	s := synth.New()
	samples := make([]float32, 0, len(codes)*synth.SamplesPerFrame)

	for _, c := range codes {
		bc := bitstream.Clamp(toInternal(c))
		if bc.Energy == bitstream.EnergyStop {
			break
		}
		samples = s.Step(bc, samples)
	}

	normalize(samples)

	return Buffer{
		SampleRate: 8000,
		Channels:   1,
		FrameCount: len(samples),
		Samples:    samples,
	}, nil
}

// normalize rescales samples by 1/(max-min), without subtracting min.
// This matches the reference implementation's observed (offset) output
// rather than a textbook [0,1] rescale; see DESIGN.md Open Question 2.
func normalize(samples []float32) {
	if len(samples) == 0 {
		return
	}

	min, max := samples[0], samples[0]
	for _, v := range samples {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	span := max - min
	if span == 0 {
		return
	}
	for i, v := range samples {
		samples[i] = v / span
	}
}

func toInternal(c Code) bitstream.Code {
	return bitstream.Code{Energy: c.Energy, Repeat: c.Repeat, Pitch: c.Pitch, K: c.K}
}

func fromInternal(c bitstream.Code) Code {
	return Code{Energy: c.Energy, Repeat: c.Repeat, Pitch: c.Pitch, K: c.K}
}
