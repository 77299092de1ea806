package layout

import "encoding/hex"

// Size is the fixed width of a binary GUID.
const Size = 16

// Length is the width of the canonical hyphenated text form.
const Length = 36

// transpose maps between the mixed-endian byte layout used by
// Windows/UEFI GUIDs and canonical RFC 4122 order. The first three
// fields (time_low, time_mid, time_hi_and_version) are stored
// little-endian; the clock sequence and node keep their byte order.
// The mapping swaps bytes pairwise, so it is its own inverse.
var transpose = [Size]int{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}

// Transpose converts 16 bytes between the mixed-endian and canonical
// layouts. The caller guarantees len(b) == Size.
func Transpose(b []byte) [Size]byte {
	var o [Size]byte
	for dst, src := range transpose {
		o[dst] = b[src]
	}
	return o
}

// EncodeCanonical renders canonical-order GUID bytes as the lowercase
// hyphenated 8-4-4-4-12 form. The result is always Length characters.
func EncodeCanonical(g [Size]byte) string {
	var buf [Length]byte
	encodeHex(buf[:], g)
	return string(buf[:])
}

func encodeHex(dst []byte, g [Size]byte) {
	hex.Encode(dst, g[:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], g[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], g[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], g[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:], g[10:])
}

// DecodeCanonical parses the hyphenated 8-4-4-4-12 form into
// canonical-order bytes. Hex digits of either case are accepted.
func DecodeCanonical(s string) ([Size]byte, bool) {
	var g [Size]byte
	if len(s) != Length || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return g, false
	}

	groups := [][2]int{{0, 8}, {9, 13}, {14, 18}, {19, 23}, {24, 36}}
	dst := 0
	for _, r := range groups {
		n, err := hex.Decode(g[dst:], []byte(s[r[0]:r[1]]))
		if err != nil {
			return [Size]byte{}, false
		}
		dst += n
	}

	return g, true
}
