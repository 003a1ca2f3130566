// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audpcm/audio"
	"github.com/ik5/audpcm/internal/audiotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOggVorbisReader simulates oggvorbis.Reader: Read returns a count of
// values, always a multiple of the channel count.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	// maxRead caps the values returned per call when positive
	maxRead int
	err     error
}

func (m *mockOggVorbisReader) SampleRate() int {
	return m.sampleRate
}

func (m *mockOggVorbisReader) Channels() int {
	return m.channels
}

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.offset >= len(m.samples) {
		if m.err != nil {
			return 0, m.err
		}
		return 0, io.EOF
	}

	n := min(len(buf), len(m.samples)-m.offset)
	if m.maxRead > 0 {
		n = min(n, m.maxRead)
	}
	n -= n % m.channels

	copy(buf, m.samples[m.offset:m.offset+n])
	m.offset += n

	return n, nil
}

func TestDecode(t *testing.T) {
	t.Parallel()

	dec := &mockOggVorbisReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{0, 0.5, -0.5, 1, -1, 0.25},
	}

	got, err := decode(dec)
	require.NoError(t, err)

	assert.Equal(t, 2, got.Channels)
	assert.Equal(t, 48000, got.SampleRate)
	assert.Equal(t, 16, got.BitsPerSample)
	assert.Equal(t, audiotest.PCM16(0, 16383, -16383, 32767, -32767, 8191), got.Data)
}

func TestDecode_ManyReads(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 10000*2)
	want := make([]int16, len(samples))
	for i := range samples {
		samples[i] = float32(i%200-100) / 100
		want[i] = int16(samples[i] * 32767)
	}

	dec := &mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: samples, maxRead: 1000}

	got, err := decode(dec)
	require.NoError(t, err)

	assert.Equal(t, audiotest.PCM16(want...), got.Data)
}

func TestDecode_Mono(t *testing.T) {
	t.Parallel()

	dec := &mockOggVorbisReader{sampleRate: 22050, channels: 1, samples: []float32{0.1, 0.2, 0.3}}

	got, err := decode(dec)
	require.NoError(t, err)

	assert.Equal(t, 1, got.Channels)
	assert.Len(t, got.Data, 6)
}

func TestDecode_ThroughNormalize(t *testing.T) {
	t.Parallel()

	dec := &mockOggVorbisReader{
		sampleRate: 44100,
		channels:   2,
		samples:    []float32{0.5, -0.5, 0.25, -0.25, 0, 0},
	}

	d, err := decode(dec)
	require.NoError(t, err)

	b, err := audio.Normalize(d)
	require.NoError(t, err)

	assert.Equal(t, []int16{16383, -16383, 8191, -8191}, b.Window())
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	got, err := decode(&mockOggVorbisReader{sampleRate: 44100, channels: 2})
	require.NoError(t, err)

	assert.Empty(t, got.Data)
}

func TestDecode_ReadError(t *testing.T) {
	t.Parallel()

	errCorrupt := errors.New("corrupt packet")
	dec := &mockOggVorbisReader{
		sampleRate: 44100,
		channels:   1,
		samples:    []float32{0.1, 0.2},
		err:        errCorrupt,
	}

	_, err := decode(dec)
	assert.ErrorIs(t, err, errCorrupt)
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("This is not Ogg Vorbis data")},
		{"wav", audiotest.PCMWAV(1, 8000, 16, audiotest.PCM16(1, 2, 3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, audio.ErrMalformedContainer)
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	samples := make([]float32, 44100*2)
	for i := range samples {
		samples[i] = float32(i%100) / 100
	}

	b.ReportAllocs()

	for b.Loop() {
		_, _ = decode(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: samples})
	}
}
