package cryptoalg

// HMACMinKeySize is the minimum HMAC key length in bytes. It is stricter than the primitive
// requires.
const HMACMinKeySize = 32

// DigestProcessor computes unkeyed SHA digests.
type DigestProcessor interface {
	// Digest returns the hex encoded digest of data.
	Digest(digest Digest, data []byte) (string, error)

	// DigestText hashes the UTF-8 encoding of text.
	DigestText(digest Digest, text string) (string, error)
}

// HMACProcessor computes and verifies keyed message authentication codes.
type HMACProcessor interface {
	// Sign returns the hex encoded tag. Keys shorter than HMACMinKeySize fail with ErrKeyTooShort.
	Sign(key string, digest Digest, data []byte) (string, error)

	// Verify recomputes the tag and compares it in constant time.
	Verify(key string, digest Digest, data []byte, tagHex string) (bool, error)
}
