package analysis

// Segment describes one fixed-duration analysis frame: its sample count,
// its offset into the parent buffer, and the quantised indices filled in
// by the pitch estimator and LPC analyser.
type Segment struct {
	Count        int
	BufferOffset int

	Energy int
	Pitch  int
	K      [10]int
}

// Segments partitions a buffer of totalFrames samples into fixed-length
// segments of segmentSize, with the last segment possibly short (or, when
// numSegments*segmentSize overshoots totalFrames by a whole segmentSize,
// empty). It requires numSegments*segmentSize to be strictly greater than
// totalFrames, matching the segmenter's no-over-long-segment invariant.
func Segments(totalFrames, segmentSize, numSegments int) []Segment {
	out := make([]Segment, numSegments)

	for i := range out {
		remaining := totalFrames - i*segmentSize
		count := segmentSize
		if remaining < count {
			count = remaining
		}
		if count < 0 {
			count = 0
		}
		out[i] = Segment{
			Count:        count,
			BufferOffset: i * segmentSize,
		}
	}

	return out
}

// NumSegments returns the segment count for a buffer of totalFrames
// samples segmented at segmentSize: floor(totalFrames/segmentSize) + 1.
// This is always strictly more than ceil(totalFrames/segmentSize) would
// give when totalFrames is an exact multiple of segmentSize, guaranteeing
// numSegments*segmentSize > totalFrames unconditionally (spec invariant:
// the segmentation must never cover the buffer exactly).
func NumSegments(totalFrames, segmentSize int) int {
	return totalFrames/segmentSize + 1
}
