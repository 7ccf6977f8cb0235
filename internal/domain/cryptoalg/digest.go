package cryptoalg

import (
	"crypto"
	"fmt"
	"strings"

	// registers the SHA implementations behind crypto.Hash
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

// Digest is a SHA-family hash function.
type Digest int

// Supported digests
const (
	SHA1 Digest = iota + 1
	SHA256
	SHA384
	SHA512
)

type digestParams struct {
	name string
	hash crypto.Hash
	size int
}

// The PSS salt length of each digest equals its output size.
var digestTable = map[Digest]digestParams{
	SHA1:   {name: "SHA-1", hash: crypto.SHA1, size: 20},
	SHA256: {name: "SHA-256", hash: crypto.SHA256, size: 32},
	SHA384: {name: "SHA-384", hash: crypto.SHA384, size: 48},
	SHA512: {name: "SHA-512", hash: crypto.SHA512, size: 64},
}

// Digests returns all supported digests.
func Digests() []Digest {
	return []Digest{SHA1, SHA256, SHA384, SHA512}
}

// ParseDigest accepts "SHA-256", "SHA256" and "sha256" style names.
func ParseDigest(s string) (Digest, error) {
	needle := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "")
	for _, d := range Digests() {
		if needle == strings.ReplaceAll(digestTable[d].name, "-", "") {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: digest %s is not supported", ErrUnknownAlgorithm, s)
}

// Valid reports whether d is one of the supported digests.
func (d Digest) Valid() bool {
	_, ok := digestTable[d]
	return ok
}

// String returns the canonical name, e.g. "SHA-256".
func (d Digest) String() string {
	if p, ok := digestTable[d]; ok {
		return p.name
	}
	return fmt.Sprintf("Digest(%d)", int(d))
}

// Hash returns the provider hash identifier.
func (d Digest) Hash() crypto.Hash {
	return digestTable[d].hash
}

// Size returns the digest output length in bytes.
func (d Digest) Size() int {
	return digestTable[d].size
}

// SaltLength returns the RSA-PSS salt length used with this digest.
func (d Digest) SaltLength() int {
	return digestTable[d].size
}
