package cryptoalg

// AESProcessor handles AES symmetric encryption.
// Keys are raw text whose UTF-8 byte length selects the variant. Ciphertexts are hex envelopes
// of the form hex(IV || ciphertext).
type AESProcessor interface {
	// Encrypt encrypts plaintext under key with a fresh random IV.
	// 24-byte keys fail with ErrUnsupportedVariant.
	Encrypt(mode Mode, key string, plaintext []byte) (string, error)

	// Decrypt splits the envelope at the mode's IV length and decrypts the remainder.
	// GCM tag mismatches fail with ErrAuthenticationFailed.
	Decrypt(mode Mode, key string, envelope string) ([]byte, error)

	// EncryptWithVariant behaves like Encrypt but also requires the key to match variant.
	EncryptWithVariant(variant AESVariant, mode Mode, key string, plaintext []byte) (string, error)

	// DecryptWithVariant behaves like Decrypt but also requires the key to match variant.
	DecryptWithVariant(variant AESVariant, mode Mode, key string, envelope string) ([]byte, error)
}
