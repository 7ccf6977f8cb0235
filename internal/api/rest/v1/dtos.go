package v1

import (
	"fmt"
	"sync"

	"github.com/MGTheTrain/crypto-facade/internal/pkg/validators"
)

var requestValidator = sync.OnceValues(validators.New)

func validateRequest(request interface{}) error {
	validate, err := requestValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(request); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// ErrorResponse represents an error payload
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// DigestRequest carries text to hash
type DigestRequest struct {
	Algorithm string `json:"algorithm" validate:"required,digest"`
	Data      string `json:"data"`
}

// Validate checks the request fields
func (r *DigestRequest) Validate() error { return validateRequest(r) }

// DigestResponse holds a hex encoded digest
type DigestResponse struct {
	Digest string `json:"digest"`
}

// HMACRequest carries text to authenticate. The key is raw text of at least 32 bytes.
type HMACRequest struct {
	Algorithm string `json:"algorithm" validate:"required,digest"`
	Key       string `json:"key" validate:"required"`
	Data      string `json:"data"`
}

// Validate checks the request fields
func (r *HMACRequest) Validate() error { return validateRequest(r) }

// HMACResponse holds a hex encoded tag
type HMACResponse struct {
	MAC string `json:"mac"`
}

// VerifyHMACRequest carries text and the hex tag to check
type VerifyHMACRequest struct {
	Algorithm string `json:"algorithm" validate:"required,digest"`
	Key       string `json:"key" validate:"required"`
	Data      string `json:"data"`
	MAC       string `json:"mac" validate:"required,hexadecimal"`
}

// Validate checks the request fields
func (r *VerifyHMACRequest) Validate() error { return validateRequest(r) }

// VerifyResponse reports a verification result
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// AESEncryptRequest carries text to encrypt. Mode is "GCM", "AES-CBC" or a suite like "aes-256-gcm".
type AESEncryptRequest struct {
	Mode      string `json:"mode" validate:"required,aesmode"`
	Key       string `json:"key" validate:"required,aeskey"`
	Plaintext string `json:"plaintext"`
}

// Validate checks the request fields
func (r *AESEncryptRequest) Validate() error { return validateRequest(r) }

// AESEncryptResponse holds hex(IV || ciphertext)
type AESEncryptResponse struct {
	Envelope string `json:"envelope"`
}

// AESDecryptRequest carries a hex envelope to decrypt
type AESDecryptRequest struct {
	Mode     string `json:"mode" validate:"required,aesmode"`
	Key      string `json:"key" validate:"required,aeskey"`
	Envelope string `json:"envelope" validate:"required,hexadecimal"`
}

// Validate checks the request fields
func (r *AESDecryptRequest) Validate() error { return validateRequest(r) }

// PlaintextResponse holds decrypted data both as text and hex
type PlaintextResponse struct {
	Plaintext    string `json:"plaintext"`
	PlaintextHex string `json:"plaintext_hex"`
}

// RSAEncryptRequest carries text to encrypt with an SPKI public key
type RSAEncryptRequest struct {
	Digest    string `json:"digest" validate:"required,digest"`
	PublicKey string `json:"public_key" validate:"required"`
	Plaintext string `json:"plaintext"`
}

// Validate checks the request fields
func (r *RSAEncryptRequest) Validate() error { return validateRequest(r) }

// RSAEncryptResponse holds hex encoded ciphertext
type RSAEncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// RSADecryptRequest carries hex ciphertext and a PKCS8 private key
type RSADecryptRequest struct {
	Digest     string `json:"digest" validate:"required,digest"`
	PrivateKey string `json:"private_key" validate:"required"`
	Ciphertext string `json:"ciphertext" validate:"required,hexadecimal"`
}

// Validate checks the request fields
func (r *RSADecryptRequest) Validate() error { return validateRequest(r) }

// RSASignRequest carries text to sign with a PKCS8 private key
type RSASignRequest struct {
	Digest     string `json:"digest" validate:"required,digest"`
	PrivateKey string `json:"private_key" validate:"required"`
	Data       string `json:"data"`
}

// Validate checks the request fields
func (r *RSASignRequest) Validate() error { return validateRequest(r) }

// RSASignResponse holds a hex encoded signature
type RSASignResponse struct {
	Signature string `json:"signature"`
}

// RSAVerifyRequest carries text, a hex signature and an SPKI public key
type RSAVerifyRequest struct {
	Digest    string `json:"digest" validate:"required,digest"`
	PublicKey string `json:"public_key" validate:"required"`
	Signature string `json:"signature" validate:"required,hexadecimal"`
	Data      string `json:"data"`
}

// Validate checks the request fields
func (r *RSAVerifyRequest) Validate() error { return validateRequest(r) }
