// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Version is the MPEG audio version, numbered as in the header bits.
type Version int

const (
	Version2_5 Version = 0
	Version2   Version = 2
	Version1   Version = 3
)

// ChannelMode is the header's channel mode field.
type ChannelMode int

const (
	ModeStereo ChannelMode = iota
	ModeJointStereo
	ModeDualChannel
	ModeSingleChannel
)

// FrameHeader is the decoded 4-byte header of an MPEG audio frame.
type FrameHeader struct {
	Version    Version
	Layer      int
	SampleRate int
	Mode       ChannelMode
}

// Channels is 1 for single channel frames and 2 otherwise.
func (h FrameHeader) Channels() int {
	if h.Mode == ModeSingleChannel {
		return 1
	}
	return 2
}

// SamplesPerFrame is the number of samples per channel a frame decodes to.
func (h FrameHeader) SamplesPerFrame() int {
	switch {
	case h.Layer == 1:
		return 384
	case h.Layer == 3 && h.Version != Version1:
		return 576
	default:
		return 1152
	}
}

var sampleRates = map[Version][3]int{
	Version1:   {44100, 48000, 32000},
	Version2:   {22050, 24000, 16000},
	Version2_5: {11025, 12000, 8000},
}

// ParseHeader decodes b[0:4] as a frame header. It reports false when b does
// not start with a sync word or uses a reserved or free-format field.
func ParseHeader(b []byte) (FrameHeader, bool) {
	if len(b) < 4 || b[0] != 0xFF || b[1]&0xE0 != 0xE0 {
		return FrameHeader{}, false
	}

	rates, ok := sampleRates[Version(b[1]>>3&0x03)]
	if !ok {
		return FrameHeader{}, false
	}

	layerBits := int(b[1] >> 1 & 0x03)
	bitrateIdx := b[2] >> 4
	rateIdx := b[2] >> 2 & 0x03
	if layerBits == 0 || bitrateIdx == 0 || bitrateIdx == 0x0F || rateIdx == 0x03 {
		return FrameHeader{}, false
	}

	return FrameHeader{
		Version:    Version(b[1] >> 3 & 0x03),
		Layer:      4 - layerBits,
		SampleRate: rates[rateIdx],
		Mode:       ChannelMode(b[3] >> 6),
	}, true
}

// maxSync bounds how far past the tags the first frame is searched for.
const maxSync = 64 << 10

// sniffHeader consumes any ID3v2 tag and junk in front of the first frame
// and returns that frame's header. The frame itself is left unread.
func sniffHeader(br *bufio.Reader) (FrameHeader, error) {
	if err := skipID3v2(br); err != nil {
		return FrameHeader{}, err
	}

	for range maxSync {
		b, err := br.Peek(4)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return FrameHeader{}, ErrNoFrames
			}
			return FrameHeader{}, fmt.Errorf("%w", err)
		}

		if h, ok := ParseHeader(b); ok {
			return h, nil
		}

		if _, err := br.Discard(1); err != nil {
			return FrameHeader{}, fmt.Errorf("%w", err)
		}
	}

	return FrameHeader{}, ErrNoFrames
}

func skipID3v2(br *bufio.Reader) error {
	b, err := br.Peek(10)
	if err != nil || string(b[:3]) != "ID3" {
		// short input is left to the frame scan
		return nil
	}

	// syncsafe size, excluding the header and optional footer
	size := int(b[6]&0x7F)<<21 | int(b[7]&0x7F)<<14 | int(b[8]&0x7F)<<7 | int(b[9]&0x7F)
	size += 10
	if b[5]&0x10 != 0 {
		size += 10
	}

	if _, err := br.Discard(size); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w", err)
	}

	return nil
}
