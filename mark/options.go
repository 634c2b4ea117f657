package mark

// DefaultCap is the number of characters kept from a payload when no cap is given.
const DefaultCap = 100

type (
	// Option configures how a payload is turned into a Mark.
	Option func(*markConfig)
	markConfig struct {
		cap        int
		terminator bool
	}
)

// WithCap keeps at most n characters of the payload. Excess characters are dropped
// silently. Values below 1 select DefaultCap.
func WithCap(n int) Option {
	return func(mc *markConfig) {
		mc.cap = n
	}
}

// WithTerminator appends a NUL byte after the payload so extraction stops exactly
// at its end regardless of what the following samples hold.
func WithTerminator() Option {
	return func(mc *markConfig) {
		mc.terminator = true
	}
}

func newMarkConfig(opts ...Option) markConfig {
	var mc markConfig
	for _, opt := range opts {
		opt(&mc)
	}
	if mc.cap < 1 {
		mc.cap = DefaultCap
	}
	return mc
}
