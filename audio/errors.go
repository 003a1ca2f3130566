// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

// Error categories. Container readers wrap one of these so callers can
// classify a failure with errors.Is without knowing the container.
var (
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrMalformedContainer = errors.New("malformed container")
	ErrEmptyResult        = errors.New("0 samples")
	ErrCannotConvert      = errors.New("cannot convert to PCM")
)

var (
	ErrUnsupportedBitDepth = fmt.Errorf("%w: bits per sample not supported", ErrUnsupportedFormat)
	ErrInvalidChannels     = fmt.Errorf("%w: channel count must be at least 1", ErrMalformedContainer)
	ErrInvalidSampleRate   = fmt.Errorf("%w: sample rate must be positive", ErrMalformedContainer)
)

// DecodeError is returned for any container level failure. Source names
// the decoded input, usually a file path.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Source == "" {
		return e.Err.Error()
	}

	return e.Source + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
