// SPDX-License-Identifier: EPL-2.0

// Package wav reads RIFF/WAVE files and writes 16-bit PCM ones.
//
// # Decoding
//
// Decoder walks the RIFF chunks with github.com/go-audio/riff, skipping
// anything that is not "fmt " or "data", and returns the raw payload:
//
//	file, _ := os.Open("sfx/door.wav")
//	decoded, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.Normalize(decoded)
//
// Format codes 1 (integer PCM) and 3 (IEEE float) are returned as they are.
// Code 85 (MPEG layer 3) is handed to the mp3 package. Any other code is a
// *FormatCodeError.
//
// # Encoding
//
// NewStream presents a Buffer as a WAV file without copying its samples.
// Only the 44 byte header is built up front; sample bytes are produced as
// they are read:
//
//	s := wav.NewStream(buf)
//	_, err := s.WriteTo(conn)
//
// Encode writes the same bytes through the go-audio encoder when the
// destination can seek, such as a file.
//
// # Errors
//
// ErrNotWavFile, ErrTruncatedHeader and ErrChunkNotFound wrap
// audio.ErrMalformedContainer. FormatCodeError wraps
// audio.ErrUnsupportedFormat.
package wav
