package codec

// TextToBytes returns the UTF-8 encoding of s.
func TextToBytes(s string) []byte {
	return []byte(s)
}

// BytesToText interprets b as UTF-8 text.
func BytesToText(b []byte) string {
	return string(b)
}

// BinaryStringToBytes maps every code point of s to a single byte, keeping the low 8 bits.
// It is meant for binary strings (one code point per byte), not for general text.
func BinaryStringToBytes(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, byte(r&0xff))
	}
	return out
}

// BytesToBinaryString is the inverse of BinaryStringToBytes: each byte becomes one code point.
func BytesToBinaryString(b []byte) string {
	runes := make([]rune, len(b))
	for i, v := range b {
		runes[i] = rune(v)
	}
	return string(runes)
}
