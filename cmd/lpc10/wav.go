package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// wavFile is the minimal subset of a canonical PCM WAV file this tool
// needs: sample rate, channel count, and signed 16-bit samples. There is
// no third-party WAV dependency here deliberately; see DESIGN.md.
type wavFile struct {
	sampleRate uint32
	channels   int
	samples    []float32 // interleaved, normalised to [-1, 1]
}

func readWAV(path string) (wavFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return wavFile{}, err
	}
	defer f.Close()

	var riffHeader [12]byte
	if _, err := io.ReadFull(f, riffHeader[:]); err != nil {
		return wavFile{}, fmt.Errorf("read RIFF header: %w", err)
	}
	if string(riffHeader[0:4]) != "RIFF" || string(riffHeader[8:12]) != "WAVE" {
		return wavFile{}, fmt.Errorf("%s is not a RIFF/WAVE file", path)
	}

	var (
		sampleRate    uint32
		channels      uint16
		bitsPerSample uint16
		haveFmt       bool
		result        wavFile
	)

	for {
		var chunkHeader [8]byte
		if _, err := io.ReadFull(f, chunkHeader[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return wavFile{}, fmt.Errorf("read chunk header: %w", err)
		}
		chunkID := string(chunkHeader[0:4])
		chunkSize := binary.LittleEndian.Uint32(chunkHeader[4:8])

		switch chunkID {
		case "fmt ":
			body := make([]byte, chunkSize)
			if _, err := io.ReadFull(f, body); err != nil {
				return wavFile{}, fmt.Errorf("read fmt chunk: %w", err)
			}
			channels = binary.LittleEndian.Uint16(body[2:4])
			sampleRate = binary.LittleEndian.Uint32(body[4:8])
			bitsPerSample = binary.LittleEndian.Uint16(body[14:16])
			haveFmt = true

		case "data":
			if !haveFmt {
				return wavFile{}, fmt.Errorf("%s: data chunk precedes fmt chunk", path)
			}
			if bitsPerSample != 16 {
				return wavFile{}, fmt.Errorf("%s: only 16-bit PCM WAV is supported, got %d-bit", path, bitsPerSample)
			}
			if channels == 0 {
				return wavFile{}, fmt.Errorf("%s: fmt chunk declares 0 channels", path)
			}
			body := make([]byte, chunkSize)
			if _, err := io.ReadFull(f, body); err != nil {
				return wavFile{}, fmt.Errorf("read data chunk: %w", err)
			}

			samples := make([]float32, len(body)/2)
			for i := range samples {
				v := int16(binary.LittleEndian.Uint16(body[i*2 : i*2+2]))
				samples[i] = float32(v) / 32768.0
			}

			result = wavFile{sampleRate: sampleRate, channels: int(channels), samples: samples}

		default:
			// Skip unknown chunks (LIST, fact, etc.), padded to even size.
			skip := int64(chunkSize)
			if chunkSize%2 == 1 {
				skip++
			}
			if _, err := f.Seek(skip, io.SeekCurrent); err != nil {
				return wavFile{}, fmt.Errorf("skip chunk %q: %w", chunkID, err)
			}
		}
	}

	if result.samples == nil {
		return wavFile{}, fmt.Errorf("%s: no data chunk found", path)
	}

	return result, nil
}

func writeWAV(path string, w wavFile) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dataSize := uint32(len(w.samples) * 2)
	blockAlign := uint16(w.channels * 2)
	byteRate := w.sampleRate * uint32(blockAlign)

	if err := writeChunkHeader(f, "RIFF", 36+dataSize); err != nil {
		return err
	}
	if _, err := f.WriteString("WAVE"); err != nil {
		return err
	}

	if err := writeChunkHeader(f, "fmt ", 16); err != nil {
		return err
	}
	fmtBody := make([]byte, 16)
	binary.LittleEndian.PutUint16(fmtBody[0:2], 1) // PCM
	binary.LittleEndian.PutUint16(fmtBody[2:4], uint16(w.channels))
	binary.LittleEndian.PutUint32(fmtBody[4:8], w.sampleRate)
	binary.LittleEndian.PutUint32(fmtBody[8:12], byteRate)
	binary.LittleEndian.PutUint16(fmtBody[12:14], blockAlign)
	binary.LittleEndian.PutUint16(fmtBody[14:16], 16)
	if _, err := f.Write(fmtBody); err != nil {
		return err
	}

	if err := writeChunkHeader(f, "data", dataSize); err != nil {
		return err
	}

	buf := make([]byte, len(w.samples)*2)
	for i, s := range w.samples {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(float32ToInt16(s)))
	}
	_, err = f.Write(buf)
	return err
}

func writeChunkHeader(f *os.File, id string, size uint32) error {
	if _, err := f.WriteString(id); err != nil {
		return err
	}
	var sizeBuf [4]byte
	binary.LittleEndian.PutUint32(sizeBuf[:], size)
	_, err := f.Write(sizeBuf[:])
	return err
}

func float32ToInt16(sample float32) int16 {
	scaled := float64(sample) * 32768.0
	if scaled > 32767.0 {
		return 32767
	}
	if scaled < -32768.0 {
		return -32768
	}
	return int16(math.RoundToEven(scaled))
}
