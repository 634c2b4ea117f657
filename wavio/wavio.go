// Package wavio moves PCM samples between WAV containers and the flat,
// interleaved []int buffers the watermark codec works on.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/yyyoichi/audiomark"
)

// wavFormatPCM is the WAVE_FORMAT_PCM format tag.
const wavFormatPCM = 1

var (
	ErrNotWAV = errors.New("not a WAV file")
	ErrNotPCM = errors.New("not a PCM WAV file")
)

// Clip is decoded audio: interleaved samples plus the format they were stored in.
type Clip struct {
	Samples []int
	Format  audiomark.Format
}

// Frames returns the number of sample frames (one sample per channel).
func (c *Clip) Frames() int {
	if ch := c.Format.Layout.Channels(); ch > 0 {
		return len(c.Samples) / ch
	}
	return 0
}

// Decode parses a WAV stream. Only 16-bit PCM mono or stereo is accepted;
// other bit depths and layouts fail with audiomark.ErrUnsupportedFormat.
func Decode(r io.ReadSeeker) (*Clip, error) {
	d := wav.NewDecoder(r)
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWAV, err)
	}
	if d.NumChans == 0 {
		return nil, ErrNotWAV
	}
	if d.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrNotPCM, d.WavAudioFormat)
	}
	f := audiomark.Format{
		BitDepth:   int(d.BitDepth),
		Layout:     audiomark.Layout(d.NumChans),
		SampleRate: int(d.SampleRate),
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}
	return &Clip{Samples: buf.Data, Format: f}, nil
}

// Encode writes c as a 16-bit PCM WAV. The writer must be seekable so the
// header sizes can be patched once all samples are written.
func Encode(w io.WriteSeeker, c *Clip) error {
	if err := c.Format.Validate(); err != nil {
		return err
	}
	enc := wav.NewEncoder(w, c.Format.SampleRate, c.Format.BitDepth, c.Format.Layout.Channels(), wavFormatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: c.Format.Layout.Channels(),
			SampleRate:  c.Format.SampleRate,
		},
		Data:           c.Samples,
		SourceBitDepth: c.Format.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile encodes c into a new file at path, replacing any existing file.
func WriteFile(path string, c *Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
