package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation names used in logs and metric labels
const (
	OpDigest         = "digest"
	OpHMAC           = "hmac"
	OpVerifyHMAC     = "verify_hmac"
	OpAESEncrypt     = "aes_encrypt"
	OpAESDecrypt     = "aes_decrypt"
	OpRSAEncryptOAEP = "rsa_encrypt_oaep"
	OpRSADecryptOAEP = "rsa_decrypt_oaep"
	OpRSASignPSS     = "rsa_sign_pss"
	OpRSAVerifyPSS   = "rsa_verify_pss"
)

// cryptoService implements the CryptoService interface on top of the processors
type cryptoService struct {
	digestProcessor cryptoalg.DigestProcessor
	hmacProcessor   cryptoalg.HMACProcessor
	aesProcessor    cryptoalg.AESProcessor
	rsaProcessor    cryptoalg.RSAProcessor
	metrics         *OperationMetrics
	logger          logger.Logger
}

// NewCryptoService creates a new cryptoService instance. metrics may be nil.
func NewCryptoService(
	digestProcessor cryptoalg.DigestProcessor,
	hmacProcessor cryptoalg.HMACProcessor,
	aesProcessor cryptoalg.AESProcessor,
	rsaProcessor cryptoalg.RSAProcessor,
	metrics *OperationMetrics,
	logger logger.Logger,
) (cryptoalg.CryptoService, error) {
	if digestProcessor == nil || hmacProcessor == nil || aesProcessor == nil || rsaProcessor == nil {
		return nil, fmt.Errorf("all processors are required")
	}

	return &cryptoService{
		digestProcessor: digestProcessor,
		hmacProcessor:   hmacProcessor,
		aesProcessor:    aesProcessor,
		rsaProcessor:    rsaProcessor,
		metrics:         metrics,
		logger:          logger,
	}, nil
}

// NewDefaultCryptoService wires the standard processors. Metrics are registered with reg unless
// reg is nil.
func NewDefaultCryptoService(logger logger.Logger, reg prometheus.Registerer) (cryptoalg.CryptoService, error) {
	digestProcessor, err := cryptography.NewDigestProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create digest processor: %w", err)
	}

	hmacProcessor, err := cryptography.NewHMACProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create HMAC processor: %w", err)
	}

	aesProcessor, err := cryptography.NewAESProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	var metrics *OperationMetrics
	if reg != nil {
		metrics, err = NewOperationMetrics(reg)
		if err != nil {
			return nil, err
		}
	}

	return NewCryptoService(digestProcessor, hmacProcessor, aesProcessor, rsaProcessor, metrics, logger)
}

// Digest hashes data with the named SHA digest and returns it hex encoded.
func (s *cryptoService) Digest(ctx context.Context, algorithm string, data []byte) (out string, err error) {
	defer s.track(OpDigest, time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("digest cancelled: %w", err)
	}

	digest, err := cryptoalg.ParseDigest(algorithm)
	if err != nil {
		return "", err
	}

	return s.digestProcessor.Digest(digest, data)
}

// HMAC computes a hex encoded HMAC tag over data.
func (s *cryptoService) HMAC(ctx context.Context, algorithm, key string, data []byte) (out string, err error) {
	defer s.track(OpHMAC, time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("hmac cancelled: %w", err)
	}

	digest, err := cryptoalg.ParseDigest(algorithm)
	if err != nil {
		return "", err
	}

	return s.hmacProcessor.Sign(key, digest, data)
}

// VerifyHMAC recomputes the tag over data and compares it with tag in constant time.
func (s *cryptoService) VerifyHMAC(ctx context.Context, algorithm, key string, data []byte, tag string) (valid bool, err error) {
	defer s.track(OpVerifyHMAC, time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("hmac verification cancelled: %w", err)
	}

	digest, err := cryptoalg.ParseDigest(algorithm)
	if err != nil {
		return false, err
	}

	return s.hmacProcessor.Verify(key, digest, data, tag)
}

// AESEncrypt encrypts data and returns hex(IV || ciphertext).
func (s *cryptoService) AESEncrypt(ctx context.Context, mode, key string, data []byte) (envelope string, err error) {
	defer s.track(OpAESEncrypt, time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("AES encryption cancelled: %w", err)
	}

	suite, pinned, err := parseAESMode(mode)
	if err != nil {
		return "", err
	}

	if pinned {
		return s.aesProcessor.EncryptWithVariant(suite.Variant, suite.Mode, key, data)
	}
	return s.aesProcessor.Encrypt(suite.Mode, key, data)
}

// AESDecrypt decrypts a hex envelope produced by AESEncrypt.
func (s *cryptoService) AESDecrypt(ctx context.Context, mode, key, envelope string) (plaintext []byte, err error) {
	defer s.track(OpAESDecrypt, time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("AES decryption cancelled: %w", err)
	}

	suite, pinned, err := parseAESMode(mode)
	if err != nil {
		return nil, err
	}

	if pinned {
		return s.aesProcessor.DecryptWithVariant(suite.Variant, suite.Mode, key, envelope)
	}
	return s.aesProcessor.Decrypt(suite.Mode, key, envelope)
}

// RSAEncryptOAEP encrypts data with an SPKI public key.
func (s *cryptoService) RSAEncryptOAEP(ctx context.Context, digest, publicPEM string, data []byte) (ciphertext []byte, err error) {
	defer s.track(OpRSAEncryptOAEP, time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("RSA encryption cancelled: %w", err)
	}

	d, err := cryptoalg.ParseDigest(digest)
	if err != nil {
		return nil, err
	}

	return s.rsaProcessor.EncryptOAEP(d, publicPEM, data)
}

// RSADecryptOAEP decrypts ciphertext with a PKCS8 private key.
func (s *cryptoService) RSADecryptOAEP(ctx context.Context, digest, privatePEM string, ciphertext []byte) (plaintext []byte, err error) {
	defer s.track(OpRSADecryptOAEP, time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("RSA decryption cancelled: %w", err)
	}

	d, err := cryptoalg.ParseDigest(digest)
	if err != nil {
		return nil, err
	}

	return s.rsaProcessor.DecryptOAEP(d, privatePEM, ciphertext)
}

// RSASignPSS signs data with a PKCS8 private key.
func (s *cryptoService) RSASignPSS(ctx context.Context, digest, privatePEM string, data []byte) (signature []byte, err error) {
	defer s.track(OpRSASignPSS, time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("RSA signing cancelled: %w", err)
	}

	d, err := cryptoalg.ParseDigest(digest)
	if err != nil {
		return nil, err
	}

	return s.rsaProcessor.SignPSS(d, privatePEM, data)
}

// RSAVerifyPSS verifies an RSA-PSS signature with an SPKI public key.
func (s *cryptoService) RSAVerifyPSS(ctx context.Context, digest, publicPEM string, signature, data []byte) (valid bool, err error) {
	defer s.track(OpRSAVerifyPSS, time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("RSA verification cancelled: %w", err)
	}

	d, err := cryptoalg.ParseDigest(digest)
	if err != nil {
		return false, err
	}

	return s.rsaProcessor.VerifyPSS(d, publicPEM, signature, data)
}

// ToHex encodes data as lower-case hex.
func (s *cryptoService) ToHex(data []byte) string {
	return codec.ToHex(data)
}

// FromHex decodes s, stopping at the first pair that is not hex.
func (s *cryptoService) FromHex(hexText string) []byte {
	return codec.FromHex(hexText)
}

func (s *cryptoService) track(operation string, start time.Time, errp *error) {
	err := *errp
	s.metrics.observe(operation, start, err)

	if err != nil {
		s.logger.Warn(fmt.Sprintf("%s failed (%s): %v", operation, cryptoalg.KindOf(err), err))
		return
	}
	s.logger.Info(fmt.Sprintf("%s succeeded", operation))
}

// parseAESMode accepts a bare mode ("GCM", "AES-CBC") or a cipher suite ("aes-256-gcm"). pinned
// reports whether the key size is fixed by the name.
func parseAESMode(name string) (suite cryptoalg.CipherSuite, pinned bool, err error) {
	if strings.Count(name, "-") == 2 {
		suite, err = cryptoalg.ParseCipherSuite(name)
		return suite, err == nil, err
	}

	mode, err := cryptoalg.ParseMode(name)
	if err != nil {
		return cryptoalg.CipherSuite{}, false, err
	}
	return cryptoalg.CipherSuite{Mode: mode}, false, nil
}
