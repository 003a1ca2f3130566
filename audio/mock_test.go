// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// mockDecoder returns a fixed result.
type mockDecoder struct {
	name string
	out  *Decoded
}

func (d *mockDecoder) Decode(io.Reader) (*Decoded, error) {
	return d.out, nil
}

// logBuffer collects slog text output; handlers may be shared by parallel
// subtests.
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

// newTestBuffer builds a buffer over samples or fails the test.
func newTestBuffer(t *testing.T, channels, sampleRate int, samples ...int16) *Buffer {
	t.Helper()

	b, err := NewBuffer(channels, sampleRate, samples)
	require.NoError(t, err)
	return b.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
