package audiomark

import "fmt"

// BitDepth is the only sample width the codec accepts.
const BitDepth = 16

// Layout is the channel arrangement of an interleaved sample buffer.
type Layout int

const (
	Mono   Layout = 1
	Stereo Layout = 2
)

// Channels returns the number of interleaved channels.
func (l Layout) Channels() int {
	return int(l)
}

func (l Layout) String() string {
	switch l {
	case Mono:
		return "mono"
	case Stereo:
		return "stereo"
	}
	return fmt.Sprintf("%d channels", int(l))
}

// Format describes a sample buffer handed over by a container decoder.
type Format struct {
	// BitDepth must be 16.
	BitDepth int
	Layout   Layout
	// SampleRate in Hz. It is carried for the container and not used by the codec.
	SampleRate int
}

// PCM16 returns a 16-bit Format with the given layout and rate.
func PCM16(layout Layout, sampleRate int) Format {
	return Format{BitDepth: BitDepth, Layout: layout, SampleRate: sampleRate}
}

// Validate returns ErrUnsupportedFormat unless f is 16-bit mono or stereo.
func (f Format) Validate() error {
	if f.BitDepth != BitDepth {
		return fmt.Errorf("%w: bit depth %d", ErrUnsupportedFormat, f.BitDepth)
	}
	if f.Layout != Mono && f.Layout != Stereo {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f.Layout)
	}
	return nil
}

func (f Format) String() string {
	return fmt.Sprintf("pcm%d %s %dHz", f.BitDepth, f.Layout, f.SampleRate)
}
