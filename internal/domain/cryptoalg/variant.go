package cryptoalg

import (
	"fmt"
	"strconv"
	"strings"
)

// AESVariant identifies an AES key size.
type AESVariant int

// AES variants. AES192 passes key length validation but has no working mode table entry.
const (
	AES128 AESVariant = iota + 1
	AES192
	AES256
)

type variantParams struct {
	keyBytes  int
	keyBits   int
	supported bool
}

var variantTable = map[AESVariant]variantParams{
	AES128: {keyBytes: 16, keyBits: 128, supported: true},
	AES192: {keyBytes: 24, keyBits: 192, supported: false},
	AES256: {keyBytes: 32, keyBits: 256, supported: true},
}

// VariantForKeyLength maps a raw key length in bytes to its AES variant.
func VariantForKeyLength(n int) (AESVariant, error) {
	for v, p := range variantTable {
		if p.keyBytes == n {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: key length should be 16, 24 or 32 bytes, got %d", ErrInvalidKeyLength, n)
}

// VariantForKeyBits maps a key size in bits to its AES variant.
func VariantForKeyBits(bits int) (AESVariant, error) {
	for v, p := range variantTable {
		if p.keyBits == bits {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: AES key size should be 128, 192 or 256 bits, got %d", ErrInvalidKeyLength, bits)
}

// KeyBytes returns the key length in bytes.
func (v AESVariant) KeyBytes() int {
	return variantTable[v].keyBytes
}

// KeyBits returns the key size in bits.
func (v AESVariant) KeyBits() int {
	return variantTable[v].keyBits
}

// Supported reports whether encrypt and decrypt are wired for this variant.
func (v AESVariant) Supported() bool {
	return variantTable[v].supported
}

// String returns e.g. "AES-256".
func (v AESVariant) String() string {
	if p, ok := variantTable[v]; ok {
		return fmt.Sprintf("AES-%d", p.keyBits)
	}
	return fmt.Sprintf("AESVariant(%d)", int(v))
}

// CipherSuite pins both the AES variant and the mode, as in "aes-256-gcm".
type CipherSuite struct {
	Variant AESVariant
	Mode    Mode
}

// ParseCipherSuite parses names of the form "aes-<bits>-<mode>", case-insensitively.
func ParseCipherSuite(s string) (CipherSuite, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "-")
	if len(parts) != 3 || parts[0] != "aes" {
		return CipherSuite{}, fmt.Errorf("%w: cipher suite %s should look like aes-256-gcm", ErrUnknownAlgorithm, s)
	}

	bits, err := strconv.Atoi(parts[1])
	if err != nil {
		return CipherSuite{}, fmt.Errorf("%w: cipher suite %s has no key size", ErrUnknownAlgorithm, s)
	}

	variant, err := VariantForKeyBits(bits)
	if err != nil {
		return CipherSuite{}, err
	}

	mode, err := ParseMode(parts[2])
	if err != nil {
		return CipherSuite{}, err
	}

	return CipherSuite{Variant: variant, Mode: mode}, nil
}

// String returns the canonical lower-case name, e.g. "aes-128-cbc".
func (c CipherSuite) String() string {
	return strings.ToLower(fmt.Sprintf("aes-%d-%s", c.Variant.KeyBits(), c.Mode))
}
