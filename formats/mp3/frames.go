// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audpcm/audio"
)

// pcmReader is the part of gomp3.Decoder the frame reader uses, so tests
// can substitute it.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// frameReader cuts go-mp3's continuous output into frame sized pieces.
// go-mp3 always produces stereo, so single channel streams are folded back
// to one channel.
type frameReader struct {
	dec     pcmReader
	header  FrameHeader
	buf     []byte
	pending []byte
	err     error
	done    bool
}

func newFrameReader(r io.Reader) (*frameReader, error) {
	br := bufio.NewReader(r)

	h, err := sniffHeader(br)
	if err != nil {
		return nil, err
	}

	dec, err := gomp3.NewDecoder(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrMalformedContainer, err)
	}

	return newPCMFrameReader(dec, h), nil
}

func newPCMFrameReader(dec pcmReader, h FrameHeader) *frameReader {
	h.SampleRate = dec.SampleRate()

	return &frameReader{
		dec:    dec,
		header: h,
		// 2 output channels of 2 bytes
		buf:    make([]byte, h.SamplesPerFrame()*4),
	}
}

func (f *frameReader) ReadFrame() (*FrameHeader, error) {
	if f.done {
		return nil, nil
	}

	n, err := io.ReadFull(f.dec, f.buf)
	switch {
	case err == nil:
		f.err = nil
	case errors.Is(err, io.EOF):
		f.done = true
		return nil, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		f.done = true
		f.err = nil
	default:
		f.err = err
	}

	f.pending = f.buf[:n]
	h := f.header
	return &h, nil
}

func (f *frameReader) DecodeFrame() ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}

	if f.header.Channels() == 1 {
		return foldMono(f.pending), nil
	}

	return f.pending, nil
}

// foldMono keeps the left sample of every stereo frame, in place.
func foldMono(pcm []byte) []byte {
	frames := len(pcm) / 4
	for i := range frames {
		pcm[i*2] = pcm[i*4]
		pcm[i*2+1] = pcm[i*4+1]
	}

	return pcm[:frames*2]
}
