// SPDX-License-Identifier: EPL-2.0

// Package audpcm loads WAV, Ogg Vorbis and MP3 files into normalized
// 16-bit PCM buffers.
//
// The container reader is chosen by file suffix (.wav, .ogg or .mp3,
// case-insensitive). Whatever the source layout, the result is an
// *audio.Buffer of signed 16-bit interleaved samples with trailing
// silence removed.
//
// # Quick Start
//
//	buf, err := audpcm.Load("sfx/jump.ogg")
//	if err != nil {
//	    // err is an *audio.DecodeError naming the file
//	}
//
//	// 22.05 kHz mono, re-encoded as WAV
//	out := buf.ChangeSampleRate(22050).ChangeChannels(1)
//	_, err = wav.NewStream(out).WriteTo(w)
//
// # Loader
//
// A Loader carries the decoder registry and a logger. Decoders for other
// suffixes, or replacements for the built-in ones, are added with
// WithDecoder:
//
//	ld := audpcm.NewLoader(
//	    audpcm.WithLogger(logger),
//	    audpcm.WithDecoder("raw", rawDecoder{}),
//	)
//	buf, err := ld.Decode("stream.raw", conn)
//
// A Loader is safe for concurrent use.
//
// # Packages
//
//   - audio: Buffer, normalization, transforms and error categories
//   - formats/wav: RIFF/WAVE reader, lazy WAV Stream and Encode
//   - formats/vorbis: Ogg Vorbis reader
//   - formats/mp3: MPEG audio reader
//
// # Errors
//
// Every error returned by a Loader is an *audio.DecodeError. Use
// errors.Is with audio.ErrUnsupportedFormat, audio.ErrMalformedContainer,
// audio.ErrEmptyResult or audio.ErrCannotConvert to classify it.
package audpcm
