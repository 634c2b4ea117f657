package audiomark

// EmbedMark is the bitstream written into sample LSBs.
// *mark.Mark implements it.
type EmbedMark interface {
	// GetBit returns 0 or 1; positions past Len wrap around.
	GetBit(at int) int
	Len() int
	// Text is the payload the bits encode.
	Text() string
	// Terminated reports whether the bits end with a NUL byte.
	Terminated() bool
}
