// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"log/slog"
	"time"
)

// BitsPerSample is the depth every Buffer is normalized to.
const BitsPerSample = 16

// Buffer is decoded audio as interleaved signed 16-bit samples together with
// a [start, start+length) window over them.
//
// A Buffer is never modified after construction. Transforms allocate new
// storage, except Slice which narrows the window over the same samples.
type Buffer struct {
	channels   int
	sampleRate int
	samples    []int16
	start      int
	length     int

	logger *slog.Logger
}

// NewBuffer wraps samples as a buffer whose window covers every whole frame.
// The slice is owned by the buffer afterwards and must not be modified.
func NewBuffer(channels, sampleRate int, samples []int16) (*Buffer, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	return &Buffer{
		channels:   channels,
		sampleRate: sampleRate,
		samples:    samples,
		length:     len(samples) - len(samples)%channels,
	}, nil
}

func (b *Buffer) Channels() int      { return b.channels }
func (b *Buffer) SampleRate() int    { return b.sampleRate }
func (b *Buffer) BitsPerSample() int { return BitsPerSample }

// Samples returns the backing sample storage, which may extend past the
// window on both sides. Callers must not modify it.
func (b *Buffer) Samples() []int16 { return b.samples }

// Start is the index in Samples where the window begins.
func (b *Buffer) Start() int { return b.start }

// Len is the number of samples (not frames) in the window.
func (b *Buffer) Len() int { return b.length }

// Window returns the samples inside the window.
func (b *Buffer) Window() []int16 { return b.samples[b.start : b.start+b.length] }

// Frames is the number of whole frames in the window.
func (b *Buffer) Frames() int { return b.length / b.channels }

// DurationMicros is the window length in microseconds, rounded down.
func (b *Buffer) DurationMicros() int64 {
	return int64(b.length) * 1_000_000 / (int64(b.sampleRate) * int64(b.channels))
}

func (b *Buffer) Duration() time.Duration {
	return time.Duration(b.DurationMicros()) * time.Microsecond
}

// WithLogger returns a copy of b sharing its samples that reports trim
// events to l. Buffers derived from the copy inherit l.
func (b *Buffer) WithLogger(l *slog.Logger) *Buffer {
	c := *b
	c.logger = l
	return &c
}

func (b *Buffer) log() *slog.Logger {
	if b.logger == nil {
		return slog.Default()
	}
	return b.logger
}

// derive builds a buffer with b's format over fresh storage.
func (b *Buffer) derive(channels, sampleRate int, samples []int16) *Buffer {
	return &Buffer{
		channels:   channels,
		sampleRate: sampleRate,
		samples:    samples,
		length:     len(samples),
		logger:     b.logger,
	}
}
