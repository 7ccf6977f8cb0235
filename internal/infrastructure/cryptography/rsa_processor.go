package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger    logger.Logger
	keyLoader cryptoalg.KeyLoader
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	keyLoader, err := NewKeyLoader(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create key loader: %w", err)
	}

	return &rsaProcessor{
		logger:    logger,
		keyLoader: keyLoader,
	}, nil
}

// EncryptOAEP encrypts plaintext using RSA-OAEP with the public key.
// NOTE: RSA can only encrypt small amounts of data (key size - 2*digest size - 2 bytes).
func (r *rsaProcessor) EncryptOAEP(digest cryptoalg.Digest, publicPEM string, plaintext []byte) ([]byte, error) {
	handle, err := r.keyLoader.LoadPublicKey(publicPEM, cryptoalg.AlgorithmRSAOAEP, digest, cryptoalg.UsageEncrypt)
	if err != nil {
		return nil, err
	}
	if !handle.Permits(cryptoalg.AlgorithmRSAOAEP, cryptoalg.UsageEncrypt) {
		return nil, errWrongHandle(cryptoalg.AlgorithmRSAOAEP, cryptoalg.UsageEncrypt)
	}

	capacity := oaepCapacity(handle.Public, digest)
	if len(plaintext) > capacity {
		return nil, fmt.Errorf("%w: %d bytes exceed the %d bytes an RSA-OAEP %s key of %d bits can hold",
			cryptoalg.ErrPlaintextTooLarge, len(plaintext), max(capacity, 0), digest, handle.Public.N.BitLen())
	}

	cipherData, err := rsa.EncryptOAEP(digest.Hash().New(), rand.Reader, handle.Public, plaintext, nil)
	if err != nil {
		if errors.Is(err, rsa.ErrMessageTooLong) {
			return nil, fmt.Errorf("%w: %v", cryptoalg.ErrPlaintextTooLarge, err)
		}
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrProviderImport, err)
	}

	r.logger.Debug("RSA-OAEP ", digest, " encryption succeeded")
	return cipherData, nil
}

// DecryptOAEP decrypts RSA-OAEP ciphertext using the PKCS8 private key.
// Every provider failure is reported as ErrDecryptionFailed with no further detail.
func (r *rsaProcessor) DecryptOAEP(digest cryptoalg.Digest, privatePEM string, ciphertext []byte) ([]byte, error) {
	handle, err := r.keyLoader.LoadPrivateKey(privatePEM, cryptoalg.AlgorithmRSAOAEP, digest, cryptoalg.UsageDecrypt)
	if err != nil {
		return nil, err
	}
	if !handle.Permits(cryptoalg.AlgorithmRSAOAEP, cryptoalg.UsageDecrypt) {
		return nil, errWrongHandle(cryptoalg.AlgorithmRSAOAEP, cryptoalg.UsageDecrypt)
	}

	plaintext, err := rsa.DecryptOAEP(digest.Hash().New(), rand.Reader, handle.Private, ciphertext, nil)
	if err != nil {
		r.logger.Debug("RSA-OAEP ", digest, " decryption failed")
		return nil, cryptoalg.ErrDecryptionFailed
	}

	r.logger.Debug("RSA-OAEP ", digest, " decryption succeeded")
	return plaintext, nil
}

// SignPSS creates an RSA-PSS signature whose salt is as long as the digest output.
func (r *rsaProcessor) SignPSS(digest cryptoalg.Digest, privatePEM string, data []byte) ([]byte, error) {
	handle, err := r.keyLoader.LoadPrivateKey(privatePEM, cryptoalg.AlgorithmRSAPSS, digest, cryptoalg.UsageSign)
	if err != nil {
		return nil, err
	}
	if !handle.Permits(cryptoalg.AlgorithmRSAPSS, cryptoalg.UsageSign) {
		return nil, errWrongHandle(cryptoalg.AlgorithmRSAPSS, cryptoalg.UsageSign)
	}

	hashed, err := hashSum(digest, data)
	if err != nil {
		return nil, err
	}

	signature, err := rsa.SignPSS(rand.Reader, handle.Private, digest.Hash(), hashed, pssOptions(digest))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sign data: %v", cryptoalg.ErrProviderImport, err)
	}

	r.logger.Debug("RSA-PSS ", digest, " signing succeeded")
	return signature, nil
}

// VerifyPSS verifies an RSA-PSS signature using the SPKI public key.
// An invalid signature yields false and no error.
func (r *rsaProcessor) VerifyPSS(digest cryptoalg.Digest, publicPEM string, signature, data []byte) (bool, error) {
	handle, err := r.keyLoader.LoadPublicKey(publicPEM, cryptoalg.AlgorithmRSAPSS, digest, cryptoalg.UsageVerify)
	if err != nil {
		return false, err
	}
	if !handle.Permits(cryptoalg.AlgorithmRSAPSS, cryptoalg.UsageVerify) {
		return false, errWrongHandle(cryptoalg.AlgorithmRSAPSS, cryptoalg.UsageVerify)
	}

	hashed, err := hashSum(digest, data)
	if err != nil {
		return false, err
	}

	if err := rsa.VerifyPSS(handle.Public, digest.Hash(), hashed, signature, pssOptions(digest)); err != nil {
		r.logger.Debug("RSA-PSS ", digest, " signature is invalid")
		return false, nil
	}

	r.logger.Debug("RSA-PSS ", digest, " signature verified successfully")
	return true, nil
}

func oaepCapacity(publicKey *rsa.PublicKey, digest cryptoalg.Digest) int {
	return publicKey.Size() - 2*digest.Size() - 2
}

func pssOptions(digest cryptoalg.Digest) *rsa.PSSOptions {
	return &rsa.PSSOptions{
		SaltLength: digest.SaltLength(),
		Hash:       digest.Hash(),
	}
}

func errWrongHandle(alg cryptoalg.Algorithm, usage cryptoalg.Usage) error {
	return fmt.Errorf("%w: key handle was not imported for %s %s", cryptoalg.ErrProviderImport, alg, usage)
}
