// SPDX-License-Identifier: EPL-2.0

package audpcm_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/audpcm"
	"github.com/ik5/audpcm/audio"
	"github.com/ik5/audpcm/formats/wav"
	"github.com/ik5/audpcm/internal/audiotest"
)

// Example_basicUsage demonstrates loading a file and reading its layout.
func Example_basicUsage() {
	dir, err := os.MkdirTemp("", "audpcm")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tone.wav")
	data := audiotest.PCMWAV(2, 44100, 16, audiotest.PCM16(audiotest.Sine(44100, 2, 4410, 441)...))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	buf, err := audpcm.Load(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("%d Hz, %d channels, %d-bit, %v\n",
		buf.SampleRate(), buf.Channels(), buf.BitsPerSample(), buf.Duration())
	// Output: 44100 Hz, 2 channels, 16-bit, 100ms
}

// Example_processingPipeline decodes, converts and re-encodes audio.
func Example_processingPipeline() {
	data := audiotest.PCMWAV(2, 44100, 16, audiotest.PCM16(audiotest.Sine(44100, 2, 44100, 440)...))

	ld := audpcm.NewLoader(audpcm.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	buf, err := ld.Decode("music.wav", bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// 8 kHz mono, first half second
	out := buf.ChangeSampleRate(8000).ChangeChannels(1).Slice(0, 500_000)

	var wavFile bytes.Buffer
	if _, err := wav.NewStream(out).WriteTo(&wavFile); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("%d frames at %d Hz\n", out.Frames(), out.SampleRate())
	fmt.Printf("WAV file: %d bytes\n", wavFile.Len())
	// Output:
	// 4000 frames at 8000 Hz
	// WAV file: 8044 bytes
}

// Example_errorHandling shows how to classify load errors.
func Example_errorHandling() {
	ld := audpcm.NewLoader()

	_, err := ld.Decode("clip.flac", bytes.NewReader(nil))

	var de *audio.DecodeError
	if errors.As(err, &de) {
		fmt.Println("source:", de.Source)
	}
	fmt.Println("unsupported:", errors.Is(err, audio.ErrUnsupportedFormat))
	fmt.Println("malformed:", errors.Is(err, audio.ErrMalformedContainer))
	// Output:
	// source: clip.flac
	// unsupported: true
	// malformed: false
}
