// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"

	"github.com/ik5/audpcm/utils"
)

// Normalizer converts decoded container payloads into 16-bit Buffers.
// The zero value logs to slog.Default.
type Normalizer struct {
	Logger *slog.Logger
	// Source names the input in log events.
	Source string
}

// Normalize converts d with the zero Normalizer.
func Normalize(d *Decoded) (*Buffer, error) {
	return Normalizer{}.Normalize(d)
}

// Normalize truncates d.Data to whole samples, drops trailing all-zero
// frames and converts what is left to signed 16-bit samples.
//
// Supported depths are 8-bit unsigned, 16 and 24-bit signed little-endian
// integers and 32-bit little-endian IEEE floats.
func (n Normalizer) Normalize(d *Decoded) (*Buffer, error) {
	switch d.BitsPerSample {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, d.BitsPerSample)
	}
	if d.Channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, d.Channels)
	}
	if d.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, d.SampleRate)
	}

	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sampleSize := d.BitsPerSample / 8
	frameSize := d.Channels * sampleSize

	// Multi-channel input is truncated to bits/4 bytes, which is one
	// frame only for stereo.
	unit := sampleSize
	if d.Channels > 1 {
		unit = d.BitsPerSample / 4
	}
	size := len(d.Data) - len(d.Data)%unit

	trimmed := trimSilentBytes(d.Data, size, frameSize)
	if trimmed != size {
		logger.Info("trimmed trailing silence",
			slog.String("file", n.Source),
			slog.Int("bytes", size-trimmed))
	}
	if trimmed <= frameSize {
		return nil, ErrEmptyResult
	}

	count := trimmed / sampleSize
	count -= count % d.Channels
	samples := make([]int16, count)
	data := d.Data

	switch d.BitsPerSample {
	case 8:
		for i := range samples {
			samples[i] = int16((int(data[i]) - 128) * 256)
		}
	case 16:
		for i := range samples {
			samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
		}
	case 24:
		// keep the most significant 16 bits
		for i := range samples {
			samples[i] = int16(uint16(data[i*3+1]) | uint16(data[i*3+2])<<8)
		}
	case 32:
		for i := range samples {
			f := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
			samples[i] = utils.Float32ToInt16(f)
		}
	}

	return &Buffer{
		channels:   d.Channels,
		sampleRate: d.SampleRate,
		samples:    samples,
		length:     len(samples),
		logger:     n.Logger,
	}, nil
}
