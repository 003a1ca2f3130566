// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audpcm/audio"
)

var errNegativePosition = errors.New("wav: negative position")

// Stream presents a Buffer as the bytes of a 16-bit PCM WAV file. Only the
// header is materialized; sample bytes are read from the buffer window as
// they are requested, so the buffer must outlive the stream.
//
// A Stream keeps a read cursor and is not safe for concurrent use.
type Stream struct {
	buf    *audio.Buffer
	header [HeaderSize]byte
	size   int64
	pos    int64
	mark   int64
}

var (
	_ io.ReadSeeker = (*Stream)(nil)
	_ io.ReaderAt   = (*Stream)(nil)
	_ io.ByteReader = (*Stream)(nil)
	_ io.WriterTo   = (*Stream)(nil)
)

func NewStream(b *audio.Buffer) *Stream {
	s := &Stream{
		buf:  b,
		size: HeaderSize + int64(b.Len())*2,
	}
	putHeader(s.header[:], b.Channels(), b.SampleRate(), uint32(b.Len()*2))

	return s
}

// Size is the total length of the WAV file in bytes.
func (s *Stream) Size() int64 { return s.size }

// Available reports the number of bytes left to read. It is zero once the
// cursor has been seeked past the end.
func (s *Stream) Available() int64 { return max(s.size-s.pos, 0) }

// Mark records the current position for a later Reset.
func (s *Stream) Mark() { s.mark = s.pos }

// Reset moves the cursor back to the last Mark, or to the start.
func (s *Stream) Reset() { s.pos = s.mark }

// Skip advances the cursor by up to n bytes and returns how far it moved.
func (s *Stream) Skip(n int64) int64 {
	n = min(n, s.Available())
	if n <= 0 {
		return 0
	}

	s.pos += n
	return n
}

// byteAt returns the byte at off, which must be inside the file.
func (s *Stream) byteAt(off int64) byte {
	if off < HeaderSize {
		return s.header[off]
	}

	v := s.buf.Samples()[s.buf.Start()+int((off-HeaderSize)/2)]
	if off%2 == 0 {
		return byte(v)
	}
	return byte(uint16(v) >> 8)
}

// ReadByte returns io.EOF once the whole file has been read.
func (s *Stream) ReadByte() (byte, error) {
	if s.pos >= s.size {
		return 0, io.EOF
	}

	c := s.byteAt(s.pos)
	s.pos++
	return c, nil
}

func (s *Stream) Read(p []byte) (int, error) {
	if s.pos >= s.size {
		return 0, io.EOF
	}

	n := s.fill(p, s.pos)
	s.pos += int64(n)
	return n, nil
}

func (s *Stream) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errNegativePosition
	}
	if off >= s.size {
		return 0, io.EOF
	}

	n := s.fill(p, off)
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// fill copies file bytes starting at off into p.
func (s *Stream) fill(p []byte, off int64) int {
	n := int(min(int64(len(p)), s.size-off))
	for i := range n {
		p[i] = s.byteAt(off + int64(i))
	}

	return n
}

func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = s.pos + offset
	case io.SeekEnd:
		pos = s.size + offset
	default:
		return 0, fmt.Errorf("wav: invalid whence: %d", whence)
	}

	if pos < 0 {
		return 0, errNegativePosition
	}

	s.pos = pos
	return pos, nil
}

// WriteTo writes the rest of the file to w in bounded chunks.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	const chunkSize = 8192

	buf := make([]byte, min(chunkSize, s.Available()))
	var written int64
	for s.pos < s.size {
		n := s.fill(buf, s.pos)
		m, err := w.Write(buf[:n])
		s.pos += int64(m)
		written += int64(m)
		if err != nil {
			return written, fmt.Errorf("%w", err)
		}
		if m < n {
			return written, io.ErrShortWrite
		}
	}

	return written, nil
}
