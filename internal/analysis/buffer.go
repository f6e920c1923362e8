// Package analysis implements the encode-side pipeline: buffer
// preparation, segmentation, pitch estimation, and LPC analysis.
package analysis

import "math"

// SampleRate is the fixed internal analysis rate. The analyser is
// unsupported below this rate; callers must upsample externally.
const SampleRate = 8000

// Prepare produces an 8 kHz mono copy of samples recorded at srcRate with
// srcChannels interleaved channels. Target frame count is
// round(srcFrames / (srcRate/8000)); each target index i samples source
// index j = round(i * srcRate/8000), averaging the channel slice at j for
// multi-channel input. Out-of-range source reads yield zero.
func Prepare(samples []float32, srcRate uint32, srcChannels int, srcFrames int) []float32 {
	ratio := float32(srcRate) / float32(SampleRate)
	targetFrames := int(math.Round(float64(float32(srcFrames) / ratio)))

	out := make([]float32, targetFrames)

	for i := 0; i < targetFrames; i++ {
		j := int(math.Round(float64(float32(i) * ratio)))

		if j >= srcFrames {
			continue
		}

		if srcChannels == 1 {
			out[i] = samples[j]
			continue
		}

		var sum float32
		for k := 0; k < srcChannels; k++ {
			idx := j*srcChannels + k
			if idx >= srcFrames*srcChannels {
				break
			}
			sum += samples[idx]
		}
		out[i] = sum / float32(srcChannels)
	}

	return out
}

// Normalize linearly rescales buf to [0, 1] in place.
func Normalize(buf []float32) {
	if len(buf) == 0 {
		return
	}

	min, max := buf[0], buf[0]
	for _, v := range buf {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	span := max - min
	for i, v := range buf {
		buf[i] = (v - min) / span
	}
}

func energySqrSum(buf []float32) float32 {
	var energy float32
	for _, v := range buf {
		energy += v * v
	}
	return energy / float32(len(buf)-1)
}

// PreEmphasis applies the frame's pre-emphasis filter in place, then
// rescales the buffer so its mean-square energy matches the pre-filter
// value. The formula matches the reference implementation's observed
// (not textbook) behaviour: s[i] = 1 - alpha*s[i-1], computed in reverse
// order. Use ConventionalPreEmphasis for the standard s[i] -= alpha*s[i-1]
// form.
func PreEmphasis(buf []float32, alpha float32) {
	preEnergy := energySqrSum(buf)

	for i := len(buf) - 1; i > 0; i-- {
		buf[i] = 1 - buf[i-1]*alpha
	}

	postEnergy := energySqrSum(buf)
	scale := float32(math.Sqrt(float64(preEnergy / postEnergy)))

	for i := range buf {
		buf[i] *= scale
	}
}

// ConventionalPreEmphasis applies the textbook pre-emphasis filter
// s[i] -= alpha*s[i-1], computed in reverse order so each s[i-1] is read
// before it is overwritten, then rescales energy the same way as
// PreEmphasis.
func ConventionalPreEmphasis(buf []float32, alpha float32) {
	preEnergy := energySqrSum(buf)

	for i := len(buf) - 1; i > 0; i-- {
		buf[i] -= alpha * buf[i-1]
	}

	postEnergy := energySqrSum(buf)
	scale := float32(math.Sqrt(float64(preEnergy / postEnergy)))

	for i := range buf {
		buf[i] *= scale
	}
}
