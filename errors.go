// errors.go defines public error types for the lpc10 package.

package lpc10

import "errors"

// Public error types for encode and decode operations.
var (
	// ErrInvalidSampleRate indicates the input buffer's sample rate is
	// below the codec's 8 kHz analysis rate. Callers must upsample
	// externally before calling Encode.
	ErrInvalidSampleRate = errors.New("lpc10: invalid sample rate (must be >= 8000)")

	// ErrInvalidChannels indicates an unsupported channel count.
	// Valid channel counts are 1 (mono) or 2 (stereo); stereo is mixed
	// to mono internally.
	ErrInvalidChannels = errors.New("lpc10: invalid channels (must be 1 or 2)")

	// ErrEmptyBuffer indicates the input buffer has no samples.
	ErrEmptyBuffer = errors.New("lpc10: empty sample buffer")

	// ErrInvalidSettings indicates settings.FrameSizeMS is too small to
	// produce a positive segment size at the 8kHz analysis rate.
	ErrInvalidSettings = errors.New("lpc10: invalid settings (FrameSizeMS must be >= 1)")

	// ErrTruncatedStream indicates UnpackTMS5220 found no complete frame
	// at all in the input: the very first frame ran out of bits. A
	// truncation that still yields at least one complete frame is instead
	// surfaced per-frame via FrameInfo.NotEnoughBits, with a nil error.
	ErrTruncatedStream = errors.New("lpc10: truncated bitstream")
)
