// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"log/slog"
)

// ChangeSampleRate returns the window resampled to target Hz.
//
// Output frame i maps to source frame p = i*rate/target. When p falls
// exactly on a source frame that frame is copied, otherwise the result is
// the unweighted midpoint of frames p and p+1 (or frame p at the end).
func (b *Buffer) ChangeSampleRate(target int) *Buffer {
	if target <= 0 {
		panic(fmt.Sprintf("audio: invalid target sample rate %d", target))
	}

	ch := int64(b.channels)
	rate := int64(b.sampleRate)
	src := b.Window()
	srcLen := int64(len(src))

	frames := srcLen / ch * int64(target) / rate
	out := make([]int16, frames*ch)

	for i := range frames {
		p := i * rate / int64(target)
		exact := (i*rate)%int64(target) == 0
		for j := range ch {
			next := (p+1)*ch + j
			if !exact && next < srcLen {
				out[i*ch+j] = src[p*ch+j]/2 + src[next]/2
			} else {
				out[i*ch+j] = src[p*ch+j]
			}
		}
	}

	return b.derive(b.channels, target, out)
}

// ChangeFrequency changes playback speed by rate (1.0 is unchanged). The
// audio is resampled to SampleRate()/rate Hz but keeps the original reported rate,
// so pitch follows speed.
func (b *Buffer) ChangeFrequency(rate float64) *Buffer {
	if rate <= 0 {
		panic(fmt.Sprintf("audio: invalid playback rate %v", rate))
	}

	out := b.ChangeSampleRate(int(float64(b.sampleRate) / rate))
	out.sampleRate = b.sampleRate
	return out
}

// ChangeChannels returns the window with target channels per frame. Every
// output channel carries source channel 0; nothing is mixed.
func (b *Buffer) ChangeChannels(target int) *Buffer {
	if target < 1 {
		panic(fmt.Sprintf("audio: invalid channel count %d", target))
	}

	src := b.Window()
	out := make([]int16, len(src)*target/b.channels)
	frames := len(out) / target

	for i := range frames {
		v := src[i*b.channels]
		for j := range target {
			out[i*target+j] = v
		}
	}

	return b.derive(target, b.sampleRate, out)
}

// Slice returns a view of durationMicros starting at startMicros into the
// window. The result shares b's samples.
//
// A zero duration, or one running past the end, selects everything from
// the start to the end. Trailing all-zero frames of the view are dropped.
func (b *Buffer) Slice(startMicros, durationMicros int64) *Buffer {
	ch := int64(b.channels)
	rate := int64(b.sampleRate)
	total := b.DurationMicros()

	if durationMicros == 0 || startMicros+durationMicros > total {
		durationMicros = max(total-startMicros, 0)
	}

	start := min(max(startMicros, 0)*rate/1_000_000*ch, int64(b.length))
	length := min(max(durationMicros, 0)*rate/1_000_000*ch, int64(b.length)-start)

	abs := b.start + int(start)
	n := trimSilentFrames(b.samples, abs, int(length), b.channels)
	if n != int(length) {
		b.log().Info("trimmed trailing silence",
			slog.Int("samples", int(length)-n))
	}

	return &Buffer{
		channels:   b.channels,
		sampleRate: b.sampleRate,
		samples:    b.samples,
		start:      abs,
		length:     n,
		logger:     b.logger,
	}
}
