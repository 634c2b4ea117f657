package bitconv

// Latin1Bytes converts the first max characters of s to one byte each.
// Characters above 0xff keep only their low byte.
func Latin1Bytes(s string, max int) []byte {
	out := make([]byte, 0, min(len(s), max))
	for _, r := range s {
		if len(out) == max {
			break
		}
		out = append(out, byte(r))
	}
	return out
}

// Latin1String maps every byte to the character with the same code point.
func Latin1String(b []byte) string {
	runes := make([]rune, len(b))
	for i, bb := range b {
		runes[i] = rune(bb)
	}
	return string(runes)
}

func BytesToBools(b []byte) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, ((bb>>uint(i))&1) == 1)
		}
	}
	return bits
}

// BoolsToBytes packs bits MSB first. A trailing group shorter than 8 bits is dropped.
func BoolsToBytes(bits []bool) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var v byte
		for j := range 8 {
			if bits[i*8+j] {
				v |= 1 << uint(7-j)
			}
		}
		out[i] = v
	}
	return out
}
