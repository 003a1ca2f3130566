// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"sync"
)

var errBadFrame = errors.New("bad frame")

// mockMP3Reader simulates gomp3.Decoder output: interleaved stereo 16-bit
// little-endian samples.
type mockMP3Reader struct {
	sampleRate int
	samples    []int16
	offset     int
	// failures is the number of Read calls that return errBadFrame
	// before any data is produced.
	failures int
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.failures > 0 {
		m.failures--
		return 0, errBadFrame
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := min(len(buf)/2, len(m.samples)-m.offset)
	for i := range n {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(m.samples[m.offset+i]))
	}
	m.offset += n

	if m.offset >= len(m.samples) {
		return n * 2, io.EOF
	}

	return n * 2, nil
}

// mockFrame is one frame served by mockFrameReader.
type mockFrame struct {
	pcm       []byte
	decodeErr error
	readErr   error
}

// mockFrameReader serves fixed frames sharing one header.
type mockFrameReader struct {
	header FrameHeader
	frames []mockFrame
	pos    int
	reads  int
}

func (m *mockFrameReader) ReadFrame() (*FrameHeader, error) {
	m.reads++
	if m.pos >= len(m.frames) {
		return nil, nil
	}

	f := m.frames[m.pos]
	m.pos++
	if f.readErr != nil {
		return nil, f.readErr
	}

	h := m.header
	return &h, nil
}

func (m *mockFrameReader) DecodeFrame() ([]byte, error) {
	f := m.frames[m.pos-1]
	return f.pcm, f.decodeErr
}

type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (l *logBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Write(p)
}

func (l *logBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

func newTestLogger() (*slog.Logger, *logBuffer) {
	out := &logBuffer{}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})), out
}

// stereoHeader is an MPEG-1 layer 3, 44.1 kHz, 128 kbit/s joint stereo frame header.
var stereoHeader = []byte{0xFF, 0xFB, 0x90, 0x44}
