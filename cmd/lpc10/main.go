// Command lpc10 encodes WAV files to the TMS5220 LPC-10 bitstream format
// and decodes them back to WAV.
//
// Usage:
//
//	lpc10 encode --in voice.wav --out voice.lpc10 [--config settings.yaml]
//	lpc10 decode --in voice.lpc10 --out voice.wav
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/speechcore/lpc10"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "encode":
		runEncode(os.Args[2:])
	case "decode":
		runDecode(os.Args[2:])
	case "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "lpc10: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  lpc10 encode --in voice.wav --out voice.lpc10 [--config settings.yaml]")
	fmt.Fprintln(os.Stderr, "  lpc10 decode --in voice.lpc10 --out voice.wav")
}

func runEncode(args []string) {
	flags := pflag.NewFlagSet("encode", pflag.ExitOnError)
	in := flags.StringP("in", "i", "", "input WAV file")
	out := flags.StringP("out", "o", "", "output LPC-10 bitstream file")
	configPath := flags.StringP("config", "c", "", "optional YAML settings override file")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: lpc10 encode --in voice.wav --out voice.lpc10 [--config settings.yaml]")
		flags.PrintDefaults()
	}
	flags.Parse(args)

	if *in == "" || *out == "" {
		flags.Usage()
		os.Exit(2)
	}

	wav, err := readWAV(*in)
	if err != nil {
		log.Fatalf("lpc10: reading %s: %v", *in, err)
	}

	settings := lpc10.DefaultSettings()
	if *configPath != "" {
		cfg, err := loadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("lpc10: reading config %s: %v", *configPath, err)
		}
		cfg.applyTo(&settings)
	}

	codes, err := lpc10.Encode(lpc10.Buffer{
		SampleRate: wav.sampleRate,
		Channels:   wav.channels,
		FrameCount: len(wav.samples) / wav.channels,
		Samples:    wav.samples,
	}, settings)
	if err != nil {
		log.Fatalf("lpc10: encode: %v", err)
	}

	packed, err := lpc10.PackTMS5220(codes)
	if err != nil {
		log.Fatalf("lpc10: pack: %v", err)
	}

	if err := os.WriteFile(*out, packed.Bytes, 0o644); err != nil {
		log.Fatalf("lpc10: writing %s: %v", *out, err)
	}

	fmt.Printf("lpc10: encoded %d frames (%d bytes) -> %s\n", len(codes), len(packed.Bytes), *out)
}

func runDecode(args []string) {
	flags := pflag.NewFlagSet("decode", pflag.ExitOnError)
	in := flags.StringP("in", "i", "", "input LPC-10 bitstream file")
	out := flags.StringP("out", "o", "", "output WAV file")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: lpc10 decode --in voice.lpc10 --out voice.wav")
		flags.PrintDefaults()
	}
	flags.Parse(args)

	if *in == "" || *out == "" {
		flags.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("lpc10: reading %s: %v", *in, err)
	}

	codes, infos, err := lpc10.UnpackTMS5220(lpc10.TMS5220Buffer{Bytes: data})
	if err != nil {
		log.Fatalf("lpc10: unpack: %v", err)
	}
	if n := len(infos); n > 0 && infos[n-1].NotEnoughBits {
		fmt.Fprintf(os.Stderr, "lpc10: warning: %s ends with a truncated frame\n", *in)
	}

	buf, err := lpc10.Decode(codes)
	if err != nil {
		log.Fatalf("lpc10: decode: %v", err)
	}

	if err := writeWAV(*out, wavFile{
		sampleRate: buf.SampleRate,
		channels:   buf.Channels,
		samples:    buf.Samples,
	}); err != nil {
		log.Fatalf("lpc10: writing %s: %v", *out, err)
	}

	fmt.Printf("lpc10: decoded %d frames (%d samples) -> %s\n", len(codes), buf.FrameCount, *out)
}
