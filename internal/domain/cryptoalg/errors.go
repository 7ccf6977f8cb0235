package cryptoalg

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a processor wraps exactly one of them.
var (
	// ErrValidation reports bad parameters detected before any provider call.
	ErrValidation = errors.New("validation error")

	// ErrMalformedKey reports PEM armor or base64 that cannot be decoded.
	ErrMalformedKey = errors.New("malformed key")

	// ErrProviderImport reports key material that does not match the requested algorithm or usage.
	ErrProviderImport = errors.New("key import failed")

	// ErrAuthenticationFailed reports an AEAD tag mismatch.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrDecryptionFailed is a deliberately generic decryption failure.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrPlaintextTooLarge reports input larger than the RSA-OAEP capacity of the key.
	ErrPlaintextTooLarge = errors.New("plaintext too large")
)

// Validation failures
var (
	ErrInvalidKeyLength   = fmt.Errorf("%w: invalid key length", ErrValidation)
	ErrUnsupportedVariant = fmt.Errorf("%w: unsupported AES variant", ErrValidation)
	ErrUnknownMode        = fmt.Errorf("%w: unknown mode", ErrValidation)
	ErrUnknownAlgorithm   = fmt.Errorf("%w: unknown algorithm", ErrValidation)
	ErrKeyTooShort        = fmt.Errorf("%w: key too short", ErrValidation)
	ErrInvalidUsage       = fmt.Errorf("%w: invalid key usage", ErrValidation)
)

// ErrorKind classifies an error for callers that branch on cause.
type ErrorKind int

// Error kinds as returned by KindOf
const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindMalformedKey
	KindProviderImport
	KindAuthenticationFailed
	KindDecryptionFailed
	KindPlaintextTooLarge
)

var kindSentinels = []struct {
	kind ErrorKind
	err  error
}{
	{KindValidation, ErrValidation},
	{KindMalformedKey, ErrMalformedKey},
	{KindProviderImport, ErrProviderImport},
	{KindAuthenticationFailed, ErrAuthenticationFailed},
	{KindDecryptionFailed, ErrDecryptionFailed},
	{KindPlaintextTooLarge, ErrPlaintextTooLarge},
}

// KindOf returns the kind err belongs to, or KindUnknown.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	for _, ks := range kindSentinels {
		if errors.Is(err, ks.err) {
			return ks.kind
		}
	}
	return KindUnknown
}

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindMalformedKey:
		return "malformed_key"
	case KindProviderImport:
		return "provider_import"
	case KindAuthenticationFailed:
		return "authentication_failed"
	case KindDecryptionFailed:
		return "decryption_failed"
	case KindPlaintextTooLarge:
		return "plaintext_too_large"
	default:
		return "unknown"
	}
}
