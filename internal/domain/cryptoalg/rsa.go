package cryptoalg

import "crypto/rsa"

// RSAKeyHandle is an RSA key imported for exactly one algorithm, digest and usage.
// Handles are built per call and dropped afterwards; they are never cached.
type RSAKeyHandle struct {
	Algorithm Algorithm
	Digest    Digest
	Usage     Usage

	Public  *rsa.PublicKey
	Private *rsa.PrivateKey
}

// Permits reports whether the handle was imported for alg and usage.
func (h *RSAKeyHandle) Permits(alg Algorithm, usage Usage) bool {
	return h != nil && h.Algorithm == alg && h.Usage == usage
}

// KeyLoader decodes PEM armored keys and imports them as usage-bound handles.
type KeyLoader interface {
	// LoadPublicDER strips the PUBLIC KEY armor and returns the SPKI DER bytes.
	LoadPublicDER(pem string) ([]byte, error)

	// LoadPrivateDER strips the PRIVATE KEY armor and returns the PKCS8 DER bytes.
	LoadPrivateDER(pem string) ([]byte, error)

	// ImportForUsage imports DER under alg with digest as hash function, scoped to usage.
	ImportForUsage(der []byte, alg Algorithm, digest Digest, usage Usage) (*RSAKeyHandle, error)

	// LoadPublicKey composes LoadPublicDER and ImportForUsage.
	LoadPublicKey(pem string, alg Algorithm, digest Digest, usage Usage) (*RSAKeyHandle, error)

	// LoadPrivateKey composes LoadPrivateDER and ImportForUsage.
	LoadPrivateKey(pem string, alg Algorithm, digest Digest, usage Usage) (*RSAKeyHandle, error)
}

// RSAProcessor handles RSA-OAEP encryption and RSA-PSS signatures over PEM keys.
type RSAProcessor interface {
	// EncryptOAEP encrypts plaintext with the SPKI public key.
	// Input longer than the key size minus 2*digest size minus 2 fails with ErrPlaintextTooLarge.
	EncryptOAEP(digest Digest, publicPEM string, plaintext []byte) ([]byte, error)

	// DecryptOAEP decrypts with the PKCS8 private key. Failures are reported as ErrDecryptionFailed
	// without further detail.
	DecryptOAEP(digest Digest, privatePEM string, ciphertext []byte) ([]byte, error)

	// SignPSS signs data with a salt as long as the digest output.
	SignPSS(digest Digest, privatePEM string, data []byte) ([]byte, error)

	// VerifyPSS returns false for an invalid signature and an error only for unusable keys.
	VerifyPSS(digest Digest, publicPEM string, signature, data []byte) (bool, error)
}
