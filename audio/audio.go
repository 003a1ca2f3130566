// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// Decoded is the raw result of a container reader. It is handed to the
// Normalizer and not retained.
type Decoded struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
	// Format is the WAV format code the payload was stored with, 0 for
	// containers that have none.
	Format uint16
	// Data holds interleaved little-endian samples of BitsPerSample each.
	Data []byte
}

// Decoder reads a whole container and returns its decoded payload.
type Decoder interface {
	Decode(r io.Reader) (*Decoded, error)
}

// Registry maps file extensions (e.g., "wav", "mp3", "ogg") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.RWMutex{},
	}
}

// Register binds d to ext. The extension is matched case-insensitively and
// may be given with or without the leading dot.
func (r *Registry) Register(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[extKey(ext)] = d
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[extKey(ext)]
	return d, ok
}

// Lookup selects the decoder for a file name by its suffix.
func (r *Registry) Lookup(name string) (Decoder, bool) {
	ext := filepath.Ext(name)
	if ext == "" {
		return nil, false
	}

	return r.Get(ext)
}

func extKey(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
