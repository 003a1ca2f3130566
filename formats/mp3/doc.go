// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG audio streams to 16-bit PCM.
//
// Frames are decoded with github.com/hajimehoshi/go-mp3, which only
// supports MPEG-1 and MPEG-2 layer 3. The first frame header is located by
// this package (after any ID3v2 tag) to learn the stream's channel count,
// since go-mp3 always produces stereo output; mono streams are folded back
// to a single channel.
//
// # Decoding
//
//	f, _ := os.Open("music/theme.mp3")
//	decoded, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.Normalize(decoded)
//
// # Damaged Streams
//
// A frame that fails to decode is skipped and logged at debug level;
// decoding continues with the next frame. After MaxConsecutiveFaults
// failures in a row (DefaultMaxConsecutiveFaults when zero) decoding stops
// and what was decoded so far is returned. Errors reading the stream itself
// abort decoding.
//
// DecodeFrames runs the same loop over any FrameReader.
//
// # Errors
//
// ErrNoFrames, returned when no frame is found, wraps audio.ErrEmptyResult.
// Streams go-mp3 rejects produce errors wrapping audio.ErrMalformedContainer.
package mp3
