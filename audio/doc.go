// SPDX-License-Identifier: EPL-2.0

// Package audio provides the normalized PCM buffer and its transforms.
//
// Every container reader in this module produces a Decoded value: the raw
// sample payload together with its channel count, sample rate and bit
// depth. Normalize turns that into a Buffer of signed 16-bit interleaved
// samples, dropping trailing all-zero frames on the way.
//
// # Buffer
//
// A Buffer holds its samples and a [start, start+length) window over them.
// Buffers are immutable, so they may be shared between goroutines without
// locking:
//
//	buf, err := audio.Normalize(decoded)
//	fmt.Println(buf.Channels(), buf.SampleRate(), buf.Duration())
//
// # Transforms
//
// Transforms return new buffers and never touch their receiver:
//
//	out := buf.ChangeSampleRate(48000) // midpoint interpolation
//	out = out.ChangeChannels(2)        // broadcast channel 0
//	out = out.ChangeFrequency(1.5)     // play 1.5 times faster
//	clip := out.Slice(250_000, 0)      // from 250ms to the end
//
// Slice shares storage with its receiver; the others allocate. Passing a
// target of zero or less to ChangeSampleRate, ChangeFrequency or
// ChangeChannels panics.
//
// # Format Registry
//
// The registry maps file suffixes to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Lookup("sfx/jump.WAV")
//
// # Errors
//
// Failures wrap one of ErrUnsupportedFormat, ErrMalformedContainer,
// ErrEmptyResult or ErrCannotConvert, so they can be classified with
// errors.Is regardless of the container that produced them.
package audio
