// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audpcm/audio"
	"github.com/ik5/audpcm/utils"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader used by decode.
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read fills p with interleaved samples and returns how many it wrote.
	Read(p []float32) (int, error)
}

// Decoder reads Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Decoded, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrMalformedContainer, err)
	}

	return decode(dec)
}

// decode pulls every sample out of dec and stores it as 16-bit PCM.
func decode(dec oggReader) (*audio.Decoded, error) {
	buf := make([]float32, 4096)
	var out []byte

	for {
		n, err := dec.Read(buf)
		for _, v := range buf[:n] {
			out = utils.AppendInt16LE(out, utils.Float32ToInt16(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return &audio.Decoded{
		Channels:      dec.Channels(),
		SampleRate:    dec.SampleRate(),
		BitsPerSample: 16,
		Data:          out,
	}, nil
}
