package lpc10

import "github.com/speechcore/lpc10/internal/bitstream"

// ClampCode re-masks every field of c to its declared bit-width and zeros
// fields that become undefined given Energy/Pitch/Repeat. ClampCode is
// idempotent.
func ClampCode(c Code) Code {
	return fromInternal(bitstream.Clamp(toInternal(c)))
}

// PackTMS5220 serialises codes into the TMS5220 variable-length bit
// format, LSB-first within each byte. Trailing bits that don't complete a
// byte are dropped.
func PackTMS5220(codes Codes) (TMS5220Buffer, error) {
	internal := make([]bitstream.Code, len(codes))
	for i, c := range codes {
		internal[i] = toInternal(c)
	}
	return TMS5220Buffer{Bytes: bitstream.Pack(internal)}, nil
}

// UnpackTMS5220 reverses PackTMS5220. It tolerates a truncated final
// frame: the partial frame is still returned, with its FrameInfo flagging
// NotEnoughBits. The terminal stop-frame may be absent from a truncated
// stream. If the very first frame is already truncated (or buf is empty),
// no Codes are returned and the error is ErrTruncatedStream.
func UnpackTMS5220(buf TMS5220Buffer) (Codes, []FrameInfo, error) {
	internal, infos := bitstream.Unpack(buf.Bytes)

	out := make([]FrameInfo, len(infos))
	for i, f := range infos {
		out[i] = FrameInfo{NotEnoughBits: f.NotEnoughBits}
	}

	if len(out) == 0 || out[0].NotEnoughBits {
		return nil, out, ErrTruncatedStream
	}

	codes := make(Codes, len(internal))
	for i, c := range internal {
		codes[i] = fromInternal(c)
	}

	return codes, out, nil
}
