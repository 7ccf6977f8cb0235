//go:build unit
// +build unit

package v1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestValidation(t *testing.T) {
	key128 := strings.Repeat("k", 16)

	tests := []struct {
		name      string
		request   validatable
		shouldErr bool
	}{
		{"Valid digest", &DigestRequest{Algorithm: "SHA-512", Data: "x"}, false},
		{"Empty data is allowed", &DigestRequest{Algorithm: "sha1"}, false},
		{"Unknown digest", &DigestRequest{Algorithm: "SHA-3"}, true},

		{"Valid HMAC", &HMACRequest{Algorithm: "SHA-256", Key: "k"}, false},
		{"HMAC without key", &HMACRequest{Algorithm: "SHA-256"}, true},
		{"Verify HMAC non hex", &VerifyHMACRequest{Algorithm: "SHA-256", Key: "k", MAC: "zz"}, true},

		{"Valid AES", &AESEncryptRequest{Mode: "GCM", Key: key128}, false},
		{"Valid AES suite", &AESEncryptRequest{Mode: "aes-128-cbc", Key: key128}, false},
		{"AES unknown mode", &AESEncryptRequest{Mode: "CTR", Key: key128}, true},
		{"AES bad key", &AESEncryptRequest{Mode: "GCM", Key: "short"}, true},
		{"AES decrypt non hex", &AESDecryptRequest{Mode: "GCM", Key: key128, Envelope: "xyz"}, true},

		{"Valid RSA encrypt", &RSAEncryptRequest{Digest: "SHA-256", PublicKey: "pem"}, false},
		{"RSA encrypt without key", &RSAEncryptRequest{Digest: "SHA-256"}, true},
		{"RSA decrypt missing ciphertext", &RSADecryptRequest{Digest: "SHA-256", PrivateKey: "pem"}, true},
		{"Valid RSA sign", &RSASignRequest{Digest: "SHA-1", PrivateKey: "pem"}, false},
		{"RSA verify bad digest", &RSAVerifyRequest{Digest: "MD5", PublicKey: "pem", Signature: "00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}
