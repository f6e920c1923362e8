package biquad

import (
	"testing"

	"github.com/speechcore/lpc10/internal/util"
)

func TestDesignDCGainIsZero(t *testing.T) {
	cases := []struct {
		name                             string
		low, high, q                    float32
		amplify                          bool
	}{
		{"pitch", 50, 500, 4.0, true},
		{"processing", 50, 4000, 1.0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := Design(8000, c.low, c.high, c.q, c.amplify)
			sum := f.b0 + f.b1 + f.b2
			if util.Abs(sum) > 1e-5 {
				t.Fatalf("b0+b1+b2 = %v, want ~0 (DC gain must be zero)", sum)
			}
		})
	}
}

func TestProcessSettlesOnConstantInput(t *testing.T) {
	f := Design(8000, 50, 4000, 1.0, false)
	var last float32
	for i := 0; i < 2000; i++ {
		last = f.Process(1.0)
	}
	if util.Abs(last) > 0.05 {
		t.Fatalf("band-pass filter did not attenuate DC input, got %v", last)
	}
}

