package bitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitConv(t *testing.T) {
	test := []struct {
		data []byte
		exp  []byte
	}{
		{data: []byte{0b10101010}, exp: []byte{0b10101010}},
		{data: []byte{0b11110000, 0b00001111}, exp: []byte{0b11110000, 0b00001111}},
		{data: []byte("Hello"), exp: []byte("Hello")},
		{data: []byte{0x00, 0xff}, exp: []byte{0x00, 0xff}},
		{data: []byte{}, exp: []byte{}},
	}
	for _, tt := range test {
		bits := BytesToBools(tt.data)
		assert.Len(t, bits, len(tt.data)*8)
		out := BoolsToBytes(bits)
		assert.Equal(t, tt.exp, out)
	}

	t.Run("msb first", func(t *testing.T) {
		assert.Equal(t, []bool{false, true, false, false, true, false, false, false}, BytesToBools([]byte("H")))
	})
	t.Run("trailing bits dropped", func(t *testing.T) {
		bits := append(BytesToBools([]byte("A")), true, true, true)
		assert.Equal(t, []byte("A"), BoolsToBytes(bits))
		assert.Empty(t, BoolsToBytes([]bool{true, false}))
	})
}

func TestLatin1(t *testing.T) {
	test := []struct {
		name string
		src  string
		max  int
		exp  []byte
	}{
		{"ascii", "Hello", 10, []byte("Hello")},
		{"truncated", "Hello", 2, []byte("He")},
		{"zero max", "Hello", 0, []byte{}},
		{"latin1", "café", 4, []byte{'c', 'a', 'f', 0xe9}},
		{"counts characters not bytes", "ééé", 2, []byte{0xe9, 0xe9}},
		{"low byte of wide rune", "Ā", 1, []byte{0x00}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exp, Latin1Bytes(tt.src, tt.max))
		})
	}
	assert.Equal(t, "café", Latin1String([]byte{'c', 'a', 'f', 0xe9}))
	assert.Equal(t, "", Latin1String(nil))
}
