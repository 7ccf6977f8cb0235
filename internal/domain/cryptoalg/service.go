package cryptoalg

import "context"

// CryptoService is the string oriented surface over the processors. Algorithm, mode and digest
// arguments are names resolved through the tables of this package, e.g. "SHA-256", "GCM" or
// "aes-256-cbc".
type CryptoService interface {
	Digest(ctx context.Context, algorithm string, data []byte) (string, error)
	HMAC(ctx context.Context, algorithm, key string, data []byte) (string, error)
	VerifyHMAC(ctx context.Context, algorithm, key string, data []byte, tag string) (bool, error)

	// AESEncrypt returns hex(IV || ciphertext). mode is either a bare mode or a cipher suite name.
	AESEncrypt(ctx context.Context, mode, key string, data []byte) (string, error)
	AESDecrypt(ctx context.Context, mode, key, envelope string) ([]byte, error)

	RSAEncryptOAEP(ctx context.Context, digest, publicPEM string, data []byte) ([]byte, error)
	RSADecryptOAEP(ctx context.Context, digest, privatePEM string, ciphertext []byte) ([]byte, error)
	RSASignPSS(ctx context.Context, digest, privatePEM string, data []byte) ([]byte, error)
	RSAVerifyPSS(ctx context.Context, digest, publicPEM string, signature, data []byte) (bool, error)

	ToHex(data []byte) string
	FromHex(s string) []byte
}
