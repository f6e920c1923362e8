// Package biquad implements the band-pass second-order IIR filter used to
// condition buffers before pitch estimation and LPC analysis.
package biquad

import "math"

// Filter is a second-order IIR section in Direct Form I (two-sample input
// and output history), normalised so a0 == 1.
type Filter struct {
	b0, b1, b2 float32
	a1, a2     float32
	x1, x2     float32
	y1, y2     float32
}

// Design computes a band-pass biquad centred between lowCut and highCut at
// the given sample rate. When amplify is true the pass-band gain is scaled
// by qFactor, matching the TMS5220 pitch-estimation pre-filter; otherwise
// the pass-band gain stays unity, matching the LPC-analysis pre-filter.
func Design(sampleRate uint32, lowCut, highCut, qFactor float32, amplify bool) Filter {
	center := (lowCut + highCut) / 2.0
	w := 2 * math.Pi * (float64(center) / float64(sampleRate))

	wCos := float32(math.Cos(w))
	wSin := float32(math.Sin(w))

	alpha := wSin / (2.0 * qFactor)

	var b0, b1, b2 float32
	if amplify {
		b0 = alpha * qFactor
		b2 = -alpha * qFactor
	} else {
		b0 = alpha
		b2 = -alpha
	}
	b1 = 0

	a0 := 1.0 + alpha
	a1 := -2.0 * wCos
	a2 := 1.0 - alpha

	return Filter{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: a1 / a0,
		a2: a2 / a0,
	}
}

// Process filters a single sample and advances the filter's history.
func (f *Filter) Process(input float32) float32 {
	output := f.b0*input + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2

	f.x2 = f.x1
	f.y2 = f.y1
	f.x1 = input
	f.y1 = output

	return output
}

// ProcessInPlace filters every sample of buf sequentially, in place.
func (f *Filter) ProcessInPlace(buf []float32) {
	for i, v := range buf {
		buf[i] = f.Process(v)
	}
}
