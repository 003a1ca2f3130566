// SPDX-License-Identifier: EPL-2.0

package audpcm

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/audpcm/audio"
	"github.com/ik5/audpcm/formats/mp3"
	"github.com/ik5/audpcm/formats/vorbis"
	"github.com/ik5/audpcm/formats/wav"
)

// Loader decodes audio files into normalized buffers, choosing the
// container reader by file suffix.
type Loader struct {
	registry *audio.Registry
	logger   *slog.Logger
}

type config struct {
	logger   *slog.Logger
	decoders map[string]audio.Decoder
}

type Option func(*config)

// WithLogger sets the logger used by the decoders, the normalizer and the
// returned buffers.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithDecoder registers d for ext, replacing the built-in decoder if any.
func WithDecoder(ext string, d audio.Decoder) Option {
	return func(c *config) { c.decoders[ext] = d }
}

// NewLoader returns a Loader for .wav, .ogg and .mp3 files.
func NewLoader(opts ...Option) *Loader {
	cfg := config{
		logger:   slog.Default(),
		decoders: make(map[string]audio.Decoder),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{Logger: cfg.logger})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("mp3", mp3.Decoder{Logger: cfg.logger})
	for ext, d := range cfg.decoders {
		reg.Register(ext, d)
	}

	return &Loader{
		registry: reg,
		logger:   cfg.logger,
	}
}

// Load decodes the file at path with a default Loader.
func Load(path string) (*audio.Buffer, error) {
	return NewLoader().Load(path)
}

// Load opens path and decodes it.
func (ld *Loader) Load(path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &audio.DecodeError{Source: path, Err: err}
	}
	defer f.Close()

	return ld.Decode(path, bufio.NewReader(f))
}

// Decode reads a whole container from r. name selects the container by
// its suffix and identifies the source in errors and log events.
//
// Every failure is an *audio.DecodeError.
func (ld *Loader) Decode(name string, r io.Reader) (*audio.Buffer, error) {
	dec, ok := ld.registry.Lookup(name)
	if !ok {
		return nil, &audio.DecodeError{
			Source: name,
			Err:    fmt.Errorf("%w: %w %q", audio.ErrCannotConvert, audio.ErrUnsupportedFormat, filepath.Ext(name)),
		}
	}

	d, err := dec.Decode(r)
	if err != nil {
		return nil, &audio.DecodeError{
			Source: name,
			Err:    fmt.Errorf("%w: %w", audio.ErrCannotConvert, err),
		}
	}
	if d == nil || len(d.Data) == 0 {
		return nil, &audio.DecodeError{Source: name, Err: audio.ErrCannotConvert}
	}

	buf, err := audio.Normalizer{Logger: ld.logger, Source: filepath.Base(name)}.Normalize(d)
	if err != nil {
		return nil, &audio.DecodeError{Source: name, Err: err}
	}

	return buf, nil
}
