package lsb

import "github.com/yyyoichi/audiomark/internal/vote"

// Bitstream is the bit source written into sample LSBs.
type Bitstream interface {
	// GetBit returns 0 or 1, wrapping at Len.
	GetBit(at int) int
	Len() int
}

// Slots returns how many of n samples are eligible under window.
// A window of zero or less covers every sample.
func Slots(n, window int) int {
	if window <= 0 || window > n {
		return n
	}
	return window
}

// Embed overwrites the least significant bit of samples in buffer order and
// returns the number of samples written. Without cycle it stops when the
// bitstream is exhausted; with cycle the bitstream restarts from its first bit
// until every slot in the window holds a bit.
//
// Interleaved channels need no special handling: slot i is simply samples[i].
func Embed(samples []int, mark Bitstream, window int, cycle bool) int {
	if mark.Len() == 0 {
		return 0
	}
	slots := Slots(len(samples), window)
	if !cycle {
		slots = min(slots, mark.Len())
	}
	for i := range slots {
		samples[i] = samples[i]&^1 | mark.GetBit(i)
	}
	return slots
}

// Extract reads the least significant bit of up to maxBits samples.
func Extract(samples []int, maxBits int) []bool {
	n := min(len(samples), max(maxBits, 0))
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = samples[i]&1 == 1
	}
	return bits
}

// ExtractVote reads every slot in the window as a vote for bit i%markLen and
// returns the majority value of each bit. It is the inverse of a cycled Embed.
func ExtractVote(samples []int, window, markLen int) []bool {
	if markLen <= 0 {
		return nil
	}
	mk := vote.NewBits(markLen)
	for at := range Slots(len(samples), window) {
		mk.Set(at, float64(samples[at]&1))
	}
	return mk.Majority()
}
