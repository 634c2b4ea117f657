package audiomark

import (
	"errors"
	"fmt"
	"slices"

	"github.com/yyyoichi/audiomark/internal/lsb"
	"github.com/yyyoichi/audiomark/internal/quality"
	"github.com/yyyoichi/audiomark/mark"
)

// DefaultScanBits is the extraction budget used when none is configured,
// enough for mark.DefaultCap characters.
const DefaultScanBits = mark.DefaultCap * 8

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidOption     = errors.New("invalid option")
)

// Embed writes text into the LSBs of samples with the specified options.
// This is a convenience function that creates a Watermark instance and calls its Embed method.
func Embed(samples []int, f Format, text string, opts ...Option) (*EmbedResult, error) {
	w, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return w.Embed(samples, f, text)
}

// Extract reads a watermark from samples with the specified options.
// This is a convenience function that creates a Watermark instance and calls its Extract method.
func Extract(samples []int, f Format, opts ...Option) (*ExtractResult, error) {
	w, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return w.Extract(samples, f)
}

// Watermark holds a codec configuration. It is immutable after New and may be
// shared between goroutines.
type Watermark struct {
	cap         int
	policy      Policy
	window      int
	scanBits    int
	terminator  bool
	defaultMark string
}

// EmbedResult is the outcome of Embed.
type EmbedResult struct {
	// Samples is a new buffer with the same length and order as the input.
	Samples []int
	// Mark is the payload actually embedded, after truncation to the cap.
	Mark string
	// MarkBits is the length of the bitstream, terminator included.
	MarkBits int
	// Written is the number of samples whose LSB was overwritten.
	Written int
	// Partial is set when the buffer or window was too short to hold every bit
	// of the mark once.
	Partial    bool
	Distortion quality.Report
}

// ExtractResult is the outcome of Extract. Found is false when no character
// could be recovered; that is a normal result, not an error.
type ExtractResult struct {
	Text  string
	Found bool
	// Terminated is set when a NUL byte ended the scan before the budget.
	Terminated bool
	// Partial is set by ExtractCycled when the window holds fewer whole
	// characters than were asked for.
	Partial bool
	// Bits is the number of LSBs read.
	Bits int
}

// New initializes a watermark codec.
// For default values, refer to the init function.
func New(opts ...Option) (*Watermark, error) {
	w := new(Watermark)
	if err := w.init(opts...); err != nil {
		return nil, err
	}
	return w, nil
}

// Embed embeds text into a copy of samples.
//
// Process:
//  1. Validates the format and the buffer.
//  2. Falls back to the default mark when text is empty.
//  3. Encodes the first cap characters as 8 bits each, MSB first.
//  4. Replaces the LSB of consecutive samples with those bits.
//
// The caller's slice is never modified.
func (w *Watermark) Embed(samples []int, f Format, text string) (*EmbedResult, error) {
	if text == "" {
		text = w.defaultMark
	}
	if text == "" {
		return nil, fmt.Errorf("%w: empty watermark text", ErrInvalidInput)
	}
	return w.EmbedMark(samples, f, mark.NewString(text, w.markOptions()...))
}

// EmbedMark embeds a prepared bitstream into a copy of samples, honoring the
// configured policy and window.
func (w *Watermark) EmbedMark(samples []int, f Format, m EmbedMark) (*EmbedResult, error) {
	if err := validate(samples, f); err != nil {
		return nil, err
	}
	if m.Len() == 0 {
		return nil, fmt.Errorf("%w: empty mark", ErrInvalidInput)
	}
	if w.policy == Cycle && m.Terminated() {
		return nil, fmt.Errorf("%w: terminated mark with %s policy", ErrInvalidOption, w.policy)
	}

	out := slices.Clone(samples)
	written := lsb.Embed(out, m, w.window, w.policy == Cycle)
	return &EmbedResult{
		Samples:    out,
		Mark:       m.Text(),
		MarkBits:   m.Len(),
		Written:    written,
		Partial:    written < m.Len(),
		Distortion: quality.Measure(samples, out),
	}, nil
}

// Extract reads LSBs in buffer order up to the scan budget and decodes them
// until a NUL byte. Characters found before the budget runs out are returned
// even without a terminator.
func (w *Watermark) Extract(samples []int, f Format) (*ExtractResult, error) {
	if err := validate(samples, f); err != nil {
		return nil, err
	}
	bits := lsb.Extract(w.windowed(samples), w.scanBits)
	d := mark.Decode(bits)
	return &ExtractResult{
		Text:       d.Text,
		Found:      d.Found(),
		Terminated: d.Terminated,
		Bits:       len(bits),
	}, nil
}

// ExtractCycled recovers a mark of chars characters written with the Cycle
// policy. Every repetition inside the window votes on each bit, so the length
// must be known instead of relying on a terminator. Only characters whose
// eight bits all fall inside the window are decoded, and decoding stops at a
// NUL byte.
func (w *Watermark) ExtractCycled(samples []int, f Format, chars int) (*ExtractResult, error) {
	if err := validate(samples, f); err != nil {
		return nil, err
	}
	if chars < 1 {
		return nil, fmt.Errorf("%w: mark length %d", ErrInvalidInput, chars)
	}
	chars = min(chars, w.cap)
	slots := lsb.Slots(len(samples), w.window)
	whole := min(chars, slots/8)

	var text string
	if whole > 0 {
		bits := lsb.ExtractVote(samples, w.window, chars*8)
		text = mark.DecodeFixed(bits, whole)
	}
	return &ExtractResult{
		Text:    text,
		Found:   text != "",
		Partial: whole < chars,
		Bits:    slots,
	}, nil
}

// Capacity returns how many characters fit once into n samples.
func (w *Watermark) Capacity(n int) int {
	bytes := lsb.Slots(n, w.window) / 8
	if w.terminator {
		bytes--
	}
	return max(min(bytes, w.cap), 0)
}

// Policy returns the configured capacity policy.
func (w *Watermark) Policy() Policy {
	return w.policy
}

func (w *Watermark) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return err
		}
	}
	if w.cap == 0 {
		w.cap = mark.DefaultCap
	}
	if w.scanBits < 8 {
		w.scanBits = DefaultScanBits
	}
	if w.policy == Cycle && w.terminator {
		return fmt.Errorf("%w: terminator cannot be combined with %s policy", ErrInvalidOption, w.policy)
	}
	return nil
}

func (w *Watermark) markOptions() []mark.Option {
	opts := []mark.Option{mark.WithCap(w.cap)}
	if w.terminator {
		opts = append(opts, mark.WithTerminator())
	}
	return opts
}

func (w *Watermark) windowed(samples []int) []int {
	return samples[:lsb.Slots(len(samples), w.window)]
}

func validate(samples []int, f Format) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("%w: no samples", ErrInvalidInput)
	}
	if len(samples)%f.Layout.Channels() != 0 {
		return fmt.Errorf("%w: %d samples do not split into %s frames", ErrInvalidInput, len(samples), f.Layout)
	}
	return nil
}
