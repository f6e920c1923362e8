package analysis

import "testing"

func TestSegmentsCoverBufferExactly(t *testing.T) {
	const total = 1000
	const size = 200
	n := NumSegments(total, size)

	segs := Segments(total, size, n)

	if n*size <= total {
		t.Fatalf("n*size = %d must be strictly greater than total = %d", n*size, total)
	}

	sum := 0
	for _, s := range segs {
		sum += s.Count
	}
	if sum != total {
		t.Fatalf("sum of segment counts = %d, want %d", sum, total)
	}
}

func TestLastSegmentIsShort(t *testing.T) {
	segs := Segments(450, 200, NumSegments(450, 200))
	last := segs[len(segs)-1]
	if last.Count != 50 {
		t.Fatalf("last segment count = %d, want 50", last.Count)
	}
}
