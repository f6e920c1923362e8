// Package lpc10 implements an LPC-10 speech codec targeting the Texas
// Instruments TMS5220 speech synthesiser bitstream format.
//
// The codec takes a PCM waveform, analyses it into a sequence of
// variable-width frames encoding energy, pitch, and ten reflection
// coefficients, and packs those frames into a byte stream consumable by
// a TMS5220 (or emulator). It can also reverse the process, decoding a
// TMS5220 byte stream back into PCM through a lattice synthesis filter
// driven by a fixed chirp table and a pseudo-random noise generator.
//
// This implementation requires no cgo dependencies and has no streaming
// mode: Encode and Decode each consume and produce a full in-memory
// buffer.
//
// # Encode path
//
// Encode down-mixes and resamples the input to 8 kHz mono, segments it
// into fixed-duration frames, estimates pitch via windowed autocorrelation,
// derives reflection coefficients via the Leroux-Guéguen recursion, and
// quantises every parameter against the fixed tables in §6 of the TMS5220
// reference. PackTMS5220 then serialises the resulting Codes into a
// variable-length bitstream.
//
// # Decode path
//
// UnpackTMS5220 reverses PackTMS5220, tolerating a truncated trailing
// frame. Decode then interpolates parameters frame-to-frame and drives a
// 10-stage reflection-coefficient lattice filter with chirp or noise
// excitation depending on voicing.
//
// # Frame format
//
// Every Code carries a 4-bit energy index (0x0 = silent, 0xF = stop-frame
// terminator), a repeat flag, a 6-bit pitch index (0 = unvoiced), and ten
// reflection-coefficient indices. ClampCode enforces these bit-widths and the
// "undefined fields must be zero" invariant on every Code entering or
// leaving the packed form.
package lpc10
