package analysis

import "github.com/speechcore/lpc10/internal/bitstream"

// Assemble converts quantised segments into a Codes stream, appending a
// terminal stop-frame and clamping every record to its legal bit-widths.
// The repeat bit is always 0: the analyser does not yet detect frames
// that could reuse the previous K-parameters.
func Assemble(segments []Segment) []bitstream.Code {
	codes := make([]bitstream.Code, len(segments)+1)

	for i, seg := range segments {
		c := bitstream.Code{
			Energy: uint8(seg.Energy),
			Repeat: false,
			Pitch:  uint8(seg.Pitch),
		}
		for j := 0; j < 10; j++ {
			c.K[j] = uint8(seg.K[j])
		}
		codes[i] = bitstream.Clamp(c)
	}

	codes[len(segments)] = bitstream.Clamp(bitstream.Code{Energy: bitstream.EnergyStop})

	return codes
}
