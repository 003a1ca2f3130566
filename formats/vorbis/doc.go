// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams to 16-bit PCM using
// github.com/jfreymuth/oggvorbis.
//
//	f, _ := os.Open("voice/intro.ogg")
//	decoded, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.Normalize(decoded)
//
// The float samples produced by the Vorbis decoder are clamped to
// [-1.0, 1.0] and scaled by 32767, so the output is always 16-bit
// regardless of the encoder's settings. Input that is not an Ogg Vorbis
// stream produces an error wrapping audio.ErrMalformedContainer.
package vorbis
