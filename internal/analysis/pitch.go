package analysis

import (
	"math"

	"github.com/speechcore/lpc10/internal/tables"
	"github.com/speechcore/lpc10/internal/util"
)

// EstimatePitch fills each segment's Pitch field with the pitch-table
// index best matching the autocorrelation-derived period over a
// windowSize-segment horizon. buf must already be band-pass filtered to
// [lowFreq, highFreq] for pitch estimation.
func EstimatePitch(buf []float32, segments []Segment, windowSize int, lowFreq, highFreq float32) {
	if len(segments) == 0 {
		return
	}

	minPeriod := int(float32(SampleRate) / highFreq)
	maxPeriod := int(float32(SampleRate) / lowFreq)
	periodCount := maxPeriod - minPeriod

	// Segment 0 is always full length in a valid segmentation.
	segmentSize := segments[0].Count
	workSize := windowSize * segmentSize

	window := make([]float32, workSize)
	for i := range window {
		window[i] = 0.54 - 0.46*float32(math.Cos(2*math.Pi*float64(i)/float64(workSize-1)))
	}

	work := make([]float32, workSize)
	periods := make([]float32, periodCount)

	for i := range segments {
		if segments[i].Count == 0 {
			// Trailing zero-length segment (segmentation overshoots the
			// buffer by a whole segment when totalFrames is an exact
			// multiple of segmentSize); nothing to correlate.
			continue
		}

		for k := range work {
			work[k] = 0
		}

		offset := 0
		copy(work[offset:offset+segments[i].Count], buf[segments[i].BufferOffset:segments[i].BufferOffset+segments[i].Count])
		offset += segments[i].Count

		for j := 1; j < windowSize; j++ {
			if i+j >= len(segments) {
				break
			}
			seg := segments[i+j]
			copy(work[offset:offset+seg.Count], buf[seg.BufferOffset:seg.BufferOffset+seg.Count])
			offset += seg.Count
		}

		for k := range work {
			work[k] *= window[k]
		}

		bestPeriodIdx := 0
		var bestValue float32
		for j := 0; j < periodCount; j++ {
			var sum float32
			for k := 0; k < segmentSize; k++ {
				sum += work[k+minPeriod+j] * work[k]
			}
			periods[j] = sum
		}
		bestValue = periods[0]
		for j := 1; j < periodCount; j++ {
			if periods[j] > bestValue {
				bestPeriodIdx = j
				bestValue = periods[j]
			}
		}

		bestPeriod := minPeriod + bestPeriodIdx

		minDist := float32(maxPeriod)
		minDistIdx := 0
		for k := 0; k < len(tables.Pitch)-1; k++ {
			dist := util.Abs(float32(tables.Pitch[k]) - float32(bestPeriod))
			if dist < minDist {
				minDist = dist
				minDistIdx = k
			}
		}

		segments[i].Pitch = minDistIdx
	}
}
