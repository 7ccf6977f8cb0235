package cryptography

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/logger"
)

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct {
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (cryptoalg.AESProcessor, error) {
	return &aesProcessor{
		logger: logger,
	}, nil
}

// Encrypt encrypts plaintext under a fresh random IV and returns hex(IV || ciphertext).
func (a *aesProcessor) Encrypt(mode cryptoalg.Mode, key string, plaintext []byte) (string, error) {
	if _, err := validateKeyAndMode(mode, key); err != nil {
		return "", err
	}

	k, err := importSymmetricKey(key, cryptoalg.AlgorithmAES, cryptoalg.UsageEncrypt)
	if err != nil {
		return "", err
	}

	// The IV must never be reused with a given key, so every call draws its own.
	iv, err := newIV(mode)
	if err != nil {
		return "", err
	}

	cipherData, err := seal(k, mode, iv, plaintext)
	if err != nil {
		return "", err
	}

	envelope := make([]byte, 0, len(iv)+len(cipherData))
	envelope = append(envelope, iv...)
	envelope = append(envelope, cipherData...)

	a.logger.Debug("AES-", mode, " encryption succeeded")
	return codec.ToHex(envelope), nil
}

// Decrypt splits the hex envelope into IV and ciphertext and decrypts it.
func (a *aesProcessor) Decrypt(mode cryptoalg.Mode, key string, envelope string) ([]byte, error) {
	if _, err := validateKeyAndMode(mode, key); err != nil {
		return nil, err
	}

	k, err := importSymmetricKey(key, cryptoalg.AlgorithmAES, cryptoalg.UsageDecrypt)
	if err != nil {
		return nil, err
	}

	iv, cipherData := parseEnvelope(codec.FromHex(envelope), mode)

	plaintext, err := open(k, mode, iv, cipherData)
	if err != nil {
		a.logger.Debug("AES-", mode, " decryption failed")
		return nil, err
	}

	a.logger.Debug("AES-", mode, " decryption succeeded")
	return plaintext, nil
}

// EncryptWithVariant encrypts after checking that key matches variant.
func (a *aesProcessor) EncryptWithVariant(variant cryptoalg.AESVariant, mode cryptoalg.Mode, key string, plaintext []byte) (string, error) {
	if err := validateVariant(variant, key); err != nil {
		return "", err
	}
	return a.Encrypt(mode, key, plaintext)
}

// DecryptWithVariant decrypts after checking that key matches variant.
func (a *aesProcessor) DecryptWithVariant(variant cryptoalg.AESVariant, mode cryptoalg.Mode, key string, envelope string) ([]byte, error) {
	if err := validateVariant(variant, key); err != nil {
		return nil, err
	}
	return a.Decrypt(mode, key, envelope)
}

func validateKeyAndMode(mode cryptoalg.Mode, key string) (cryptoalg.AESVariant, error) {
	variant, err := cryptoalg.VariantForKeyLength(len(codec.TextToBytes(key)))
	if err != nil {
		return 0, err
	}

	if !mode.Valid() {
		return 0, fmt.Errorf("%w: mode %s does not exist", cryptoalg.ErrUnknownMode, mode)
	}

	if !variant.Supported() {
		return 0, fmt.Errorf("%w: %s is not supported", cryptoalg.ErrUnsupportedVariant, variant)
	}

	return variant, nil
}

func validateVariant(variant cryptoalg.AESVariant, key string) error {
	if variant.KeyBytes() == 0 {
		return fmt.Errorf("%w: %s", cryptoalg.ErrUnknownAlgorithm, variant)
	}
	if !variant.Supported() {
		return fmt.Errorf("%w: %s is not supported", cryptoalg.ErrUnsupportedVariant, variant)
	}
	if n := len(codec.TextToBytes(key)); n != variant.KeyBytes() {
		return fmt.Errorf("%w: %s key length should be %d bytes, got %d",
			cryptoalg.ErrInvalidKeyLength, variant, variant.KeyBytes(), n)
	}
	return nil
}

func newIV(mode cryptoalg.Mode) ([]byte, error) {
	iv := make([]byte, mode.IVLength())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}
	return iv, nil
}

// parseEnvelope splits at the mode's IV length. Short input yields a short IV and empty
// ciphertext; open rejects both.
func parseEnvelope(raw []byte, mode cryptoalg.Mode) (iv, cipherData []byte) {
	n := mode.IVLength()
	if len(raw) < n {
		return raw, nil
	}
	return raw[:n], raw[n:]
}

func seal(k *symmetricKey, mode cryptoalg.Mode, iv, plaintext []byte) ([]byte, error) {
	if err := k.permits(cryptoalg.AlgorithmAES, cryptoalg.UsageEncrypt); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(k.material)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrProviderImport, err)
	}

	switch mode {
	case cryptoalg.ModeGCM:
		gcm, err := cipher.NewGCMWithNonceSize(block, mode.IVLength())
		if err != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", err)
		}
		return gcm.Seal(nil, iv, plaintext, nil), nil
	case cryptoalg.ModeCBC:
		padded := pkcs7Pad(plaintext, aes.BlockSize)
		out := make([]byte, len(padded))
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
		return out, nil
	default:
		return nil, fmt.Errorf("%w: mode %s does not exist", cryptoalg.ErrUnknownMode, mode)
	}
}

func open(k *symmetricKey, mode cryptoalg.Mode, iv, cipherData []byte) ([]byte, error) {
	if err := k.permits(cryptoalg.AlgorithmAES, cryptoalg.UsageDecrypt); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(k.material)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrProviderImport, err)
	}

	switch mode {
	case cryptoalg.ModeGCM:
		if len(iv) != mode.IVLength() || len(cipherData) < cryptoalg.GCMTagSize {
			return nil, fmt.Errorf("%w: envelope too short", cryptoalg.ErrAuthenticationFailed)
		}
		gcm, err := cipher.NewGCMWithNonceSize(block, mode.IVLength())
		if err != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", err)
		}
		plaintext, err := gcm.Open(nil, iv, cipherData, nil)
		if err != nil {
			return nil, cryptoalg.ErrAuthenticationFailed
		}
		return plaintext, nil
	case cryptoalg.ModeCBC:
		if len(iv) != mode.IVLength() || len(cipherData) == 0 || len(cipherData)%aes.BlockSize != 0 {
			return nil, cryptoalg.ErrDecryptionFailed
		}
		out := make([]byte, len(cipherData))
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, cipherData)
		plaintext, ok := pkcs7Unpad(out, aes.BlockSize)
		if !ok {
			return nil, cryptoalg.ErrDecryptionFailed
		}
		return plaintext, nil
	default:
		return nil, fmt.Errorf("%w: mode %s does not exist", cryptoalg.ErrUnknownMode, mode)
	}
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}
