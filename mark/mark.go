package mark

import (
	"github.com/yyyoichi/audiomark/internal/bitconv"
	"github.com/yyyoichi/bitstream-go"
)

// Mark is a payload encoded as a bitstream: 8 bits per character, most
// significant bit first, in character order.
type Mark struct {
	text       string
	terminated bool
	data       []byte
	reader     *bitstream.BitReader[uint64]
}

// NewString encodes text into a Mark. Only the first cap characters are used
// (see WithCap). Each character is stored as one byte, so code points above 255
// keep only their low byte.
func NewString(text string, opts ...Option) *Mark {
	mc := newMarkConfig(opts...)
	data := bitconv.Latin1Bytes(text, mc.cap)

	m := &Mark{
		text:       bitconv.Latin1String(data),
		terminated: mc.terminator,
	}
	if mc.terminator {
		data = append(data, 0)
	}
	if len(data) == 0 {
		return m
	}
	m.data = data
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range data {
		w.Write8(0, 8, v)
	}
	m.reader = bitstream.NewBitReader(w.Data(), 0, 0)
	m.reader.SetBits(w.Bits())
	return m
}

// GetBit returns the bit at the specified position as 0 or 1.
// The position wraps around using modulo if it exceeds the mark length.
func (m *Mark) GetBit(at int) int {
	if m.reader == nil {
		return 0
	}
	n := at % m.reader.Bits()
	return int(m.reader.Read8R(1, n))
}

// Len returns the total number of bits in the mark, terminator included.
func (m *Mark) Len() int {
	if m.reader == nil {
		return 0
	}
	return m.reader.Bits()
}

// Text returns the payload that was actually encoded, after truncation.
func (m *Mark) Text() string {
	return m.text
}

// Terminated reports whether a NUL terminator follows the payload bits.
func (m *Mark) Terminated() bool {
	return m.terminated
}

func (m *Mark) bools() []bool {
	return bitconv.BytesToBools(m.data)
}
