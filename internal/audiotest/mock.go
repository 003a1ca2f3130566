// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds audio fixtures for tests. It works on raw bytes
// and samples only, so the audio package can use it without an import cycle.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Chunk is a RIFF chunk placed verbatim into a WAV fixture.
type Chunk struct {
	ID   string
	Data []byte
}

// WAVOptions describes the fmt chunk and layout of a WAV fixture.
type WAVOptions struct {
	Format        uint16
	Channels      int
	SampleRate    int
	BitsPerSample int
	// FmtExtra is appended to the 16 byte fmt body.
	FmtExtra []byte
	// Before is written ahead of the fmt chunk, Between after it.
	Before  []Chunk
	Between []Chunk
	// NoData leaves out the data chunk.
	NoData bool
}

// WAV returns a RIFF/WAVE file holding data.
func WAV(o WAVOptions, data []byte) []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")

	for _, c := range o.Before {
		writeChunk(body, c)
	}

	blockAlign := o.Channels * o.BitsPerSample / 8
	fmtBody := new(bytes.Buffer)
	binary.Write(fmtBody, binary.LittleEndian, o.Format)
	binary.Write(fmtBody, binary.LittleEndian, uint16(o.Channels))
	binary.Write(fmtBody, binary.LittleEndian, uint32(o.SampleRate))
	binary.Write(fmtBody, binary.LittleEndian, uint32(o.SampleRate*blockAlign))
	binary.Write(fmtBody, binary.LittleEndian, uint16(blockAlign))
	binary.Write(fmtBody, binary.LittleEndian, uint16(o.BitsPerSample))
	fmtBody.Write(o.FmtExtra)
	writeChunk(body, Chunk{ID: "fmt ", Data: fmtBody.Bytes()})

	for _, c := range o.Between {
		writeChunk(body, c)
	}

	if !o.NoData {
		writeChunk(body, Chunk{ID: "data", Data: data})
	}

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

// PCMWAV is WAV for format 1 with the given layout.
func PCMWAV(channels, sampleRate, bitsPerSample int, data []byte) []byte {
	return WAV(WAVOptions{
		Format:        1,
		Channels:      channels,
		SampleRate:    sampleRate,
		BitsPerSample: bitsPerSample,
	}, data)
}

func writeChunk(w *bytes.Buffer, c Chunk) {
	w.WriteString(c.ID)
	binary.Write(w, binary.LittleEndian, uint32(len(c.Data)))
	w.Write(c.Data)
	if len(c.Data)%2 == 1 {
		w.WriteByte(0)
	}
}

// PCM16 encodes samples as little-endian 16-bit bytes.
func PCM16(samples ...int16) []byte {
	out := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
	}
	return out
}

// Float32LE encodes samples as little-endian IEEE floats.
func Float32LE(samples ...float32) []byte {
	out := make([]byte, 0, len(samples)*4)
	for _, s := range samples {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(s))
	}
	return out
}

// Sine returns frames of an interleaved sine tone at half amplitude. Every
// channel carries the same wave.
func Sine(sampleRate, channels, frames int, frequency float64) []int16 {
	out := make([]int16, frames*channels)
	for i := range frames {
		t := float64(i) / float64(sampleRate)
		v := int16(math.Sin(2*math.Pi*frequency*t) * 16384)
		for c := range channels {
			out[i*channels+c] = v
		}
	}
	return out
}

// Ramp returns n samples counting up from first.
func Ramp(first int16, n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = first + int16(i)
	}
	return out
}

// MP3FrameSize is the length of an unpadded 128 kbit/s, 44.1 kHz MPEG-1
// layer 3 frame.
const MP3FrameSize = 417

// MP3SideInfoOffset is where the side information starts inside a frame.
const MP3SideInfoOffset = 4

// SilentMP3 returns frames MPEG-1 layer 3 frames at 128 kbit/s and 44.1 kHz.
// Side information and main data are all zero, so every frame decodes to
// 1152 samples of silence per channel. channels is 1 for single channel
// mode, anything else gives joint stereo.
func SilentMP3(channels, frames int) []byte {
	header := []byte{0xFF, 0xFB, 0x90, 0x64}
	if channels == 1 {
		header[3] = 0xC4
	}

	out := make([]byte, 0, frames*MP3FrameSize)
	for range frames {
		out = append(out, header...)
		out = append(out, make([]byte, MP3FrameSize-len(header))...)
	}
	return out
}
