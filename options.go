package audiomark

import "fmt"

type Option func(*Watermark) error

// Policy decides what happens to the samples left over once the mark is written.
type Policy int

const (
	// Truncate writes the mark once and leaves the remaining samples untouched.
	Truncate Policy = iota
	// Cycle repeats the mark from its first bit until every sample in the
	// window carries one. Extract it with ExtractCycled.
	Cycle
)

func (p Policy) String() string {
	switch p {
	case Truncate:
		return "truncate"
	case Cycle:
		return "cycle"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy accepts "truncate" or "cycle".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "truncate", "":
		return Truncate, nil
	case "cycle":
		return Cycle, nil
	}
	return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidOption, s)
}

// WithCap limits the payload to n characters. Longer payloads are cut
// without error. The default is 100; the minimal configuration uses 8.
func WithCap(n int) Option {
	return func(w *Watermark) error {
		if n < 1 {
			return fmt.Errorf("%w: cap %d", ErrInvalidOption, n)
		}
		w.cap = n
		return nil
	}
}

// WithPolicy selects Truncate (default) or Cycle.
func WithPolicy(p Policy) Option {
	return func(w *Watermark) error {
		if p != Truncate && p != Cycle {
			return fmt.Errorf("%w: %s", ErrInvalidOption, p)
		}
		w.policy = p
		return nil
	}
}

// WithWindow restricts embedding and extraction to the first n samples.
// Zero means the whole buffer.
func WithWindow(n int) Option {
	return func(w *Watermark) error {
		if n < 0 {
			return fmt.Errorf("%w: window %d", ErrInvalidOption, n)
		}
		w.window = n
		return nil
	}
}

// WithScanBits sets how many LSBs Extract reads before giving up on finding
// a terminator. Values below 8 select the default of 800.
func WithScanBits(n int) Option {
	return func(w *Watermark) error {
		w.scanBits = n
		return nil
	}
}

// WithTerminator appends a NUL byte to every embedded mark so Extract stops
// exactly at its end. It cannot be combined with Cycle.
func WithTerminator() Option {
	return func(w *Watermark) error {
		w.terminator = true
		return nil
	}
}

// WithDefaultMark sets the text embedded when Embed receives an empty payload.
func WithDefaultMark(text string) Option {
	return func(w *Watermark) error {
		w.defaultMark = text
		return nil
	}
}
