// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	goaudio "github.com/go-audio/audio"
)

// IntBuffer copies the window into a go-audio buffer.
func (b *Buffer) IntBuffer() *goaudio.IntBuffer {
	win := b.Window()
	data := make([]int, len(win))
	for i, v := range win {
		data[i] = int(v)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: b.channels,
			SampleRate:  b.sampleRate,
		},
		Data:           data,
		SourceBitDepth: BitsPerSample,
	}
}

// FromIntBuffer builds a Buffer from a go-audio buffer holding 16-bit
// values. Out of range values are clamped.
func FromIntBuffer(ib *goaudio.IntBuffer) (*Buffer, error) {
	if ib == nil || ib.Format == nil {
		return nil, ErrInvalidChannels
	}

	samples := make([]int16, len(ib.Data))
	for i, v := range ib.Data {
		samples[i] = int16(min(max(v, math.MinInt16), math.MaxInt16))
	}

	return NewBuffer(ib.Format.NumChannels, ib.Format.SampleRate, samples)
}
