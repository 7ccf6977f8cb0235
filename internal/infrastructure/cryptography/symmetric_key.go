package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/codec"
)

// symmetricKey is a raw key imported for one algorithm and usage. It lives for a single call.
type symmetricKey struct {
	algorithm cryptoalg.Algorithm
	usage     cryptoalg.Usage
	material  []byte
}

func importSymmetricKey(rawKey string, alg cryptoalg.Algorithm, usage cryptoalg.Usage) (*symmetricKey, error) {
	if !alg.Allows(usage) {
		return nil, fmt.Errorf("%w: %s keys cannot be used to %s", cryptoalg.ErrInvalidUsage, alg, usage)
	}

	return &symmetricKey{
		algorithm: alg,
		usage:     usage,
		material:  codec.TextToBytes(rawKey),
	}, nil
}

func (k *symmetricKey) permits(alg cryptoalg.Algorithm, usage cryptoalg.Usage) error {
	if k == nil || k.algorithm != alg || k.usage != usage {
		return fmt.Errorf("%w: key handle was not imported for %s %s", cryptoalg.ErrProviderImport, alg, usage)
	}
	return nil
}
