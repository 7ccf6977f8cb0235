package cryptography

import (
	"crypto/hmac"
	"fmt"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/logger"
)

// hmacProcessor struct that implements the HMACProcessor interface
type hmacProcessor struct {
	logger logger.Logger
}

// NewHMACProcessor creates and returns a new instance of hmacProcessor
func NewHMACProcessor(logger logger.Logger) (cryptoalg.HMACProcessor, error) {
	return &hmacProcessor{
		logger: logger,
	}, nil
}

// Sign computes the HMAC of data and returns it hex encoded.
func (h *hmacProcessor) Sign(key string, digest cryptoalg.Digest, data []byte) (string, error) {
	tag, err := h.mac(key, digest, data)
	if err != nil {
		return "", err
	}

	h.logger.Debug("HMAC-", digest, " computed")
	return codec.ToHex(tag), nil
}

// Verify recomputes the HMAC and compares it against tagHex in constant time.
func (h *hmacProcessor) Verify(key string, digest cryptoalg.Digest, data []byte, tagHex string) (bool, error) {
	expected, err := h.mac(key, digest, data)
	if err != nil {
		return false, err
	}

	return hmac.Equal(expected, codec.FromHex(tagHex)), nil
}

func (h *hmacProcessor) mac(rawKey string, digest cryptoalg.Digest, data []byte) ([]byte, error) {
	if len(codec.TextToBytes(rawKey)) < cryptoalg.HMACMinKeySize {
		return nil, fmt.Errorf("%w: min key length must be %d bytes", cryptoalg.ErrKeyTooShort, cryptoalg.HMACMinKeySize)
	}
	if !digest.Valid() {
		return nil, fmt.Errorf("%w: %s", cryptoalg.ErrUnknownAlgorithm, digest)
	}

	key, err := importSymmetricKey(rawKey, cryptoalg.AlgorithmHMAC, cryptoalg.UsageSign)
	if err != nil {
		return nil, err
	}
	if err := key.permits(cryptoalg.AlgorithmHMAC, cryptoalg.UsageSign); err != nil {
		return nil, err
	}

	mac := hmac.New(digest.Hash().New, key.material)
	mac.Write(data)
	return mac.Sum(nil), nil
}
