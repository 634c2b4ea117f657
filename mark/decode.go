package mark

import (
	"slices"

	"github.com/yyyoichi/audiomark/internal/bitconv"
	"github.com/yyyoichi/bitstream-go"
)

// Decoded is the text recovered from a bit sequence.
type Decoded struct {
	Text string
	// Terminated is set when a NUL byte ended the scan.
	Terminated bool
	// Bytes is the number of whole bytes consumed, terminator included.
	Bytes int
}

// Found reports whether any character was recovered. An immediate terminator
// or a sequence shorter than one byte yields nothing.
func (d Decoded) Found() bool {
	return d.Text != ""
}

// Decode groups bits into bytes, most significant bit first, and converts them
// to characters until a NUL byte or the end of bits. Trailing bits that do not
// fill a byte are discarded.
func Decode(bits []bool) Decoded {
	n := len(bits) / 8
	if n == 0 {
		return Decoded{}
	}
	r := newReader(bits)
	buf := make([]byte, 0, n)
	for i := range n {
		b := r.Read8R(8, i)
		if b == 0 {
			return Decoded{
				Text:       bitconv.Latin1String(buf),
				Terminated: true,
				Bytes:      i + 1,
			}
		}
		buf = append(buf, b)
	}
	return Decoded{Text: bitconv.Latin1String(buf), Bytes: n}
}

// DecodeFixed decodes at most size characters. Fewer are returned when bits
// holds less than size bytes or a NUL byte comes first.
func DecodeFixed(bits []bool, size int) string {
	if size <= 0 {
		return ""
	}
	buf := bitconv.BoolsToBytes(bits)
	if len(buf) > size {
		buf = buf[:size]
	}
	if i := slices.Index(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return bitconv.Latin1String(buf)
}

func newReader(bits []bool) *bitstream.BitReader[uint64] {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())
	return r
}
