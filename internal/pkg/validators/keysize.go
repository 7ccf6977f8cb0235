// Package validators registers the custom validation tags used by request DTOs.
package validators

import (
	"fmt"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/codec"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the aesmode, digest and aeskey tags registered.
func New() (*validator.Validate, error) {
	validate := validator.New()

	tags := map[string]validator.Func{
		"aesmode": AESModeValidation,
		"digest":  DigestValidation,
		"aeskey":  AESKeyLengthValidation,
	}
	for tag, fn := range tags {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
	}

	return validate, nil
}

// AESModeValidation accepts bare mode names ("GCM", "AES-CBC") and cipher suites ("aes-256-gcm").
func AESModeValidation(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if _, err := cryptoalg.ParseMode(name); err == nil {
		return true
	}
	_, err := cryptoalg.ParseCipherSuite(name)
	return err == nil
}

// DigestValidation accepts the digest names understood by cryptoalg.ParseDigest.
func DigestValidation(fl validator.FieldLevel) bool {
	_, err := cryptoalg.ParseDigest(fl.Field().String())
	return err == nil
}

// AESKeyLengthValidation checks that a raw key is 16, 24 or 32 bytes long.
// 24-byte keys pass here and are rejected later as an unsupported variant.
func AESKeyLengthValidation(fl validator.FieldLevel) bool {
	_, err := cryptoalg.VariantForKeyLength(len(codec.TextToBytes(fl.Field().String())))
	return err == nil
}
