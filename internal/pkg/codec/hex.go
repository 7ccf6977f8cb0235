package codec

const hexDigits = "0123456789abcdef"

// ToHex encodes b as lower-case hex, two characters per byte.
// A nil or empty slice yields the empty string.
func ToHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hexDigits[v>>4]
		out[i*2+1] = hexDigits[v&0x0f]
	}
	return string(out)
}

// FromHex decodes s pair by pair from the left. Decoding stops at the first pair that is
// not made of two hex digits and the bytes decoded up to that point are returned.
// A trailing odd character is ignored. FromHex never fails; it may return fewer bytes
// than len(s)/2.
func FromHex(s string) []byte {
	n := len(s) / 2
	out := make([]byte, n)

	i := 0
	for ; i < n; i++ {
		hi, ok := fromHexChar(s[i*2])
		if !ok {
			break
		}
		lo, ok := fromHexChar(s[i*2+1])
		if !ok {
			break
		}
		out[i] = hi<<4 | lo
	}

	return out[:i]
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
