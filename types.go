package lpc10

// Buffer is a sample buffer: sample rate, channel count, frame count, and
// the interleaved float32 samples themselves. After Decode, SampleRate is
// always 8000 and Channels is always 1.
type Buffer struct {
	SampleRate uint32
	Channels   int
	FrameCount int
	Samples    []float32
}

// Code is one analysis frame: quantised energy, pitch, and ten
// reflection-coefficient indices, plus the repeat flag. See ClampCode for the
// invariants every Code must satisfy before leaving or entering the
// packed form.
type Code struct {
	Energy uint8
	Repeat bool
	Pitch  uint8
	K      [10]uint8
}

// Codes is an ordered sequence of Code records, terminated by exactly one
// frame whose Energy == 0xF.
type Codes []Code

// TMS5220Buffer is a packed TMS5220 byte stream. Concatenating the Bytes
// of compatible streams produced by PackTMS5220 is valid.
type TMS5220Buffer struct {
	Bytes []byte
}

// FrameInfo carries decode-time truncation state for one frame produced
// by UnpackTMS5220.
type FrameInfo struct {
	// NotEnoughBits is set when the bitstream ran out of bits before this
	// frame's stop condition was reached.
	NotEnoughBits bool
}

// Settings configures the analyser. Use DefaultSettings for the TMS5220
// reference tuning.
type Settings struct {
	PitchLowCut, PitchHighCut float32
	PitchQFactor              float32

	ProcessingLowCut, ProcessingHighCut float32
	ProcessingQFactor                   float32

	UnvoicedThresh       float32
	UnvoicedRMSMultiply  float32
	DoPreEmphasis        bool
	PreEmphasisAlpha     float32

	// PreEmphasisConventional selects the textbook pre-emphasis formula
	// s[i] -= alpha*s[i-1] instead of the reference implementation's
	// observed (and likely buggy) s[i] = 1 - alpha*s[i-1]. See DESIGN.md
	// for the rationale; default false preserves observed behaviour.
	PreEmphasisConventional bool

	FrameSizeMS           uint32
	WindowSizeInSegments  uint32
}

// DefaultSettings returns the TMS5220 reference tuning.
func DefaultSettings() Settings {
	return Settings{
		PitchLowCut:          50.0,
		PitchHighCut:         500.0,
		PitchQFactor:         4.0,
		ProcessingLowCut:     50.0,
		ProcessingHighCut:    4000.0,
		ProcessingQFactor:    1.0,
		UnvoicedThresh:       -0.1,
		UnvoicedRMSMultiply:  2.0,
		DoPreEmphasis:        true,
		PreEmphasisAlpha:     -0.9373,
		FrameSizeMS:          25,
		WindowSizeInSegments: 2,
	}
}
