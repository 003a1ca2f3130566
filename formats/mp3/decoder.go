// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/audpcm/audio"
)

var ErrNoFrames = fmt.Errorf("%w: no MPEG audio frames", audio.ErrEmptyResult)

// DefaultMaxConsecutiveFaults is used when Decoder.MaxConsecutiveFaults is 0.
const DefaultMaxConsecutiveFaults = 32

// FrameReader is a frame by frame MPEG audio decoder.
type FrameReader interface {
	// ReadFrame advances to the next frame and returns its header. A nil
	// header with a nil error is the end of the stream.
	ReadFrame() (*FrameHeader, error)
	// DecodeFrame decodes the current frame to interleaved 16-bit
	// little-endian PCM. The slice is only valid until the next ReadFrame.
	DecodeFrame() ([]byte, error)
}

// Decoder decodes MP3 streams to 16-bit PCM.
type Decoder struct {
	Logger *slog.Logger
	// MaxConsecutiveFaults stops decoding after that many frames in a row
	// failed to decode, keeping what was decoded so far.
	MaxConsecutiveFaults int
}

func (d Decoder) Decode(r io.Reader) (*audio.Decoded, error) {
	fr, err := newFrameReader(r)
	if err != nil {
		return nil, err
	}

	return d.DecodeFrames(fr)
}

// DecodeFrames drains fr. Channels and sample rate are taken from the first
// frame. A frame that fails to decode contributes nothing and decoding goes
// on with the next one; only ReadFrame errors abort.
func (d Decoder) DecodeFrames(fr FrameReader) (*audio.Decoded, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxFaults := d.MaxConsecutiveFaults
	if maxFaults <= 0 {
		maxFaults = DefaultMaxConsecutiveFaults
	}

	var (
		out    bytes.Buffer
		result *audio.Decoded
		faults int
	)

	for frame := 0; ; frame++ {
		h, err := fr.ReadFrame()
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if h == nil {
			break
		}

		if result == nil {
			result = &audio.Decoded{
				Channels:      h.Channels(),
				SampleRate:    h.SampleRate,
				BitsPerSample: 16,
			}
		}

		pcm, err := fr.DecodeFrame()
		if err != nil {
			faults++
			logger.Debug("skipping undecodable frame",
				slog.Int("frame", frame),
				slog.Any("error", err))

			if faults >= maxFaults {
				logger.Warn("too many consecutive frame faults",
					slog.Int("frame", frame),
					slog.Int("faults", faults))
				break
			}
			continue
		}

		faults = 0
		out.Write(pcm)
	}

	if result == nil {
		return nil, ErrNoFrames
	}

	result.Data = out.Bytes()
	return result, nil
}
