package analysis

import (
	"math"
	"testing"

	"github.com/speechcore/lpc10/internal/tables"
	"github.com/speechcore/lpc10/internal/util"
)

func TestEstimatePitchOnSine(t *testing.T) {
	const frames = 1600 // 200ms at 8kHz
	const toneHz = 400  // period 20 samples, inside the default [16,160) search window
	buf := make([]float32, frames)
	for i := range buf {
		buf[i] = float32(math.Sin(2 * math.Pi * toneHz * float64(i) / SampleRate))
	}

	segSize := 200
	n := NumSegments(frames, segSize)
	segs := Segments(frames, segSize, n)

	EstimatePitch(buf, segs, 2, 50, 500)

	wantIdx := nearestUint(tables.Pitch[:len(tables.Pitch)-1], SampleRate/toneHz)

	for i, s := range segs {
		if i == len(segs)-1 {
			continue // final short/edge segment horizon may run off the buffer
		}
		if s.Pitch != wantIdx {
			t.Errorf("segment %d pitch index = %d, want %d", i, s.Pitch, wantIdx)
		}
	}
}

func nearestUint(table []uint32, value uint32) int {
	minDist := util.Abs(int(table[0]) - int(value))
	minIdx := 0
	for i := 1; i < len(table); i++ {
		dist := util.Abs(int(table[i]) - int(value))
		if dist < minDist {
			minDist = dist
			minIdx = i
		}
	}
	return minIdx
}
