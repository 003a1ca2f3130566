// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audpcm/audio"
)

// HeaderSize is the length of the canonical PCM header written by this
// package.
const HeaderSize = 44

// putHeader writes a 16-bit PCM header for dataSize bytes of samples.
func putHeader(header []byte, channels, sampleRate int, dataSize uint32) {
	const bitsPerSample = audio.BitsPerSample
	byteRate := uint32(sampleRate) * uint32(channels) * bitsPerSample / 8
	blockAlign := uint16(channels) * bitsPerSample / 8

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(header[20:22], FormatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)
}

// Encode writes the window of b as a 16-bit PCM WAV file using the go-audio
// encoder, which patches the sizes in place and so needs a WriteSeeker.
// Use NewStream when only an io.Writer is available.
func Encode(w io.WriteSeeker, b *audio.Buffer) error {
	enc := gowav.NewEncoder(w, b.SampleRate(), audio.BitsPerSample, b.Channels(), int(FormatPCM))

	if err := enc.Write(b.IntBuffer()); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
