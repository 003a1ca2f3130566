// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-audio/riff"
	"github.com/ik5/audpcm/audio"
	"github.com/ik5/audpcm/formats/mp3"
)

// fmtChunk is the fixed part of the "fmt " chunk.
type fmtChunk struct {
	Format        uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

const fmtChunkSize = 16

// Decoder reads RIFF/WAVE files. Chunks may come in any order; anything
// before "fmt " and between "fmt " and "data" is skipped.
type Decoder struct {
	// Logger is passed on to the MP3 decoder for MPEG layer 3 payloads.
	Logger *slog.Logger
}

func (d Decoder) Decode(r io.Reader) (*audio.Decoded, error) {
	p := riff.New(r)

	id, _, err := p.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedHeader, err)
	}
	if id != riff.RiffID {
		return nil, ErrNotWavFile
	}
	if err := binary.Read(r, binary.BigEndian, &p.Format); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedHeader, err)
	}
	if p.Format != riff.WavFormatID {
		return nil, ErrNotWavFile
	}

	chunk, err := seekChunk(r, p, riff.FmtID)
	if err != nil {
		return nil, err
	}
	if chunk.Size < fmtChunkSize {
		return nil, fmt.Errorf("%w: fmt chunk of %d bytes", ErrTruncatedHeader, chunk.Size)
	}

	var f fmtChunk
	if err := chunk.ReadLE(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedHeader, err)
	}
	chunk.Drain()
	if chunk.Size%2 == 1 {
		if _, err := io.CopyN(io.Discard, r, 1); err != nil {
			return nil, chunkErr(riff.DataFormatID, err)
		}
	}

	chunk, err = seekChunk(r, p, riff.DataFormatID)
	if err != nil {
		return nil, err
	}

	payload, err := io.ReadAll(chunk.R)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	switch f.Format {
	case FormatPCM, FormatIEEEFloat:
		return &audio.Decoded{
			Channels:      int(f.Channels),
			SampleRate:    int(f.SampleRate),
			BitsPerSample: int(f.BitsPerSample),
			Format:        f.Format,
			Data:          payload,
		}, nil
	case FormatMPEGLayer3:
		dec, err := mp3.Decoder{Logger: d.Logger}.Decode(bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		dec.Format = f.Format
		return dec, nil
	default:
		return nil, &FormatCodeError{Code: f.Format}
	}
}

// seekChunk skips chunks until one tagged id starts and returns it with its
// declared length. Running out of input first is ErrChunkNotFound.
func seekChunk(r io.Reader, p *riff.Parser, id [4]byte) (*riff.Chunk, error) {
	for {
		cid, size, err := p.IDnSize()
		if err != nil {
			return nil, chunkErr(id, err)
		}

		if cid == id {
			return &riff.Chunk{
				ID:   cid,
				Size: int(size),
				R:    io.LimitReader(r, int64(size)),
			}, nil
		}

		// chunks are word aligned
		if size%2 == 1 {
			size++
		}
		if _, err := io.CopyN(io.Discard, r, int64(size)); err != nil {
			return nil, chunkErr(id, err)
		}
	}
}

func chunkErr(id [4]byte, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %q", ErrChunkNotFound, id[:])
	}

	return fmt.Errorf("%w", err)
}
