// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/audpcm/audio"
)

var (
	ErrNotWavFile      = fmt.Errorf("%w: not a WAV file", audio.ErrMalformedContainer)
	ErrTruncatedHeader = fmt.Errorf("%w: truncated WAV header", audio.ErrMalformedContainer)
	ErrChunkNotFound   = fmt.Errorf("%w: chunk not found", audio.ErrMalformedContainer)
)

// Format codes found in the fmt chunk.
const (
	FormatPCM        uint16 = 1
	FormatIEEEFloat  uint16 = 3
	FormatMPEGLayer3 uint16 = 85
)

// FormatCodeError reports a fmt chunk format code that cannot be decoded.
type FormatCodeError struct {
	Code uint16
}

func (e *FormatCodeError) Error() string {
	return fmt.Sprintf("unsupported WAV format ID: %d", e.Code)
}

func (e *FormatCodeError) Unwrap() error { return audio.ErrUnsupportedFormat }
