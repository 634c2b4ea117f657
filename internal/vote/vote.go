package vote

// Tally accumulates the values observed for one bit position.
type Tally struct {
	sum   float64
	count int
}

func (t *Tally) Add(value float64) {
	t.sum += value
	t.count += 1
}

// Average returns 0 when nothing was added.
func (t *Tally) Average() float64 {
	if t.count == 0 {
		return 0
	}
	return t.sum / float64(t.count)
}

func (t *Tally) Count() int { return t.count }

// Bits holds one tally per bit of a repeated bitstream.
type Bits []Tally

func NewBits(markLen int) Bits {
	return make([]Tally, markLen)
}

// Set records v for the bit at position at, wrapping modulo the mark length.
func (b Bits) Set(at int, v float64) {
	b[at%len(b)].Add(v)
}

// Majority resolves every position to true when at least half of its votes were 1.
// Positions that received no vote resolve to false.
func (b Bits) Majority() []bool {
	out := make([]bool, len(b))
	for i := range b {
		out[i] = b[i].Count() > 0 && b[i].Average() >= 0.5
	}
	return out
}
