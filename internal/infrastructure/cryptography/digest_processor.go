package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/logger"
)

// digestProcessor struct that implements the DigestProcessor interface
type digestProcessor struct {
	logger logger.Logger
}

// NewDigestProcessor creates and returns a new instance of digestProcessor
func NewDigestProcessor(logger logger.Logger) (cryptoalg.DigestProcessor, error) {
	return &digestProcessor{
		logger: logger,
	}, nil
}

// Digest returns the hex encoded digest of data.
func (d *digestProcessor) Digest(digest cryptoalg.Digest, data []byte) (string, error) {
	sum, err := hashSum(digest, data)
	if err != nil {
		return "", err
	}

	d.logger.Debug(digest, " digest computed")
	return codec.ToHex(sum), nil
}

// DigestText hashes the UTF-8 encoding of text.
func (d *digestProcessor) DigestText(digest cryptoalg.Digest, text string) (string, error) {
	return d.Digest(digest, codec.TextToBytes(text))
}

func hashSum(digest cryptoalg.Digest, data []byte) ([]byte, error) {
	if !digest.Valid() {
		return nil, fmt.Errorf("%w: %s", cryptoalg.ErrUnknownAlgorithm, digest)
	}

	h := digest.Hash().New()
	h.Write(data)
	return h.Sum(nil), nil
}
