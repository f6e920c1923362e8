package lpc10

import (
	"github.com/speechcore/lpc10/internal/analysis"
	"github.com/speechcore/lpc10/internal/biquad"
)

// Encode analyses buf into a Codes stream using settings. buf's channel
// count must be 1 or 2; its sample rate must be at least 8000. Stereo
// input is mixed to mono internally; the analyser itself always runs at
// 8 kHz mono regardless of buf's input rate.
func Encode(buf Buffer, settings Settings) (Codes, error) {
	if buf.Channels != 1 && buf.Channels != 2 {
		return nil, ErrInvalidChannels
	}
	if buf.SampleRate < analysis.SampleRate {
		return nil, ErrInvalidSampleRate
	}
	if len(buf.Samples) == 0 || buf.FrameCount == 0 {
		return nil, ErrEmptyBuffer
	}
	segmentSize := int(analysis.SampleRate / 1000 * settings.FrameSizeMS)
	if segmentSize <= 0 {
		return nil, ErrInvalidSettings
	}

	processing := analysis.Prepare(buf.Samples, buf.SampleRate, buf.Channels, buf.FrameCount)
	pitchBuf := make([]float32, len(processing))
	copy(pitchBuf, processing)

	numSegments := analysis.NumSegments(len(processing), segmentSize)
	segments := analysis.Segments(len(processing), segmentSize, numSegments)

	if settings.DoPreEmphasis {
		if settings.PreEmphasisConventional {
			analysis.ConventionalPreEmphasis(processing, settings.PreEmphasisAlpha)
		} else {
			analysis.PreEmphasis(processing, settings.PreEmphasisAlpha)
		}
	}

	// Pitch estimation uses the amplified band-pass variant, LPC analysis
	// the plain one, per the encoder settings' documented Q semantics.
	processingFilter := biquad.Design(analysis.SampleRate, settings.ProcessingLowCut, settings.ProcessingHighCut, settings.ProcessingQFactor, false)
	processingFilter.ProcessInPlace(processing)

	pitchFilter := biquad.Design(analysis.SampleRate, settings.PitchLowCut, settings.PitchHighCut, settings.PitchQFactor, true)
	pitchFilter.ProcessInPlace(pitchBuf)

	analysis.EstimatePitch(pitchBuf, segments, int(settings.WindowSizeInSegments), settings.PitchLowCut, settings.PitchHighCut)
	analysis.AnalyzeSegments(processing, segments, segmentSize, settings.UnvoicedThresh, settings.UnvoicedRMSMultiply)

	frames := analysis.Assemble(segments)

	codes := make(Codes, len(frames))
	for i, f := range frames {
		codes[i] = Code{Energy: f.Energy, Repeat: f.Repeat, Pitch: f.Pitch, K: f.K}
	}

	return codes, nil
}
