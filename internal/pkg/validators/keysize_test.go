//go:build unit
// +build unit

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type aesRequest struct {
	Mode string `validate:"required,aesmode"`
	Key  string `validate:"required,aeskey"`
}

type digestRequest struct {
	Algorithm string `validate:"required,digest"`
}

func TestAESValidations(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	tests := []struct {
		name      string
		request   aesRequest
		shouldErr bool
	}{
		{"valid GCM 128", aesRequest{Mode: "GCM", Key: strings.Repeat("k", 16)}, false},
		{"valid CBC 256", aesRequest{Mode: "aes-cbc", Key: strings.Repeat("k", 32)}, false},
		{"192 passes length validation", aesRequest{Mode: "CBC", Key: strings.Repeat("k", 24)}, false},
		{"invalid key length", aesRequest{Mode: "GCM", Key: "shortkey"}, true},
		{"cipher suite", aesRequest{Mode: "aes-256-gcm", Key: strings.Repeat("k", 32)}, false},
		{"unknown suite", aesRequest{Mode: "aes-512-gcm", Key: strings.Repeat("k", 32)}, true},
		{"unknown mode", aesRequest{Mode: "ECB", Key: strings.Repeat("k", 16)}, true},
		{"empty", aesRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDigestValidation(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	assert.NoError(t, validate.Struct(digestRequest{Algorithm: "SHA-384"}))
	assert.NoError(t, validate.Struct(digestRequest{Algorithm: "sha1"}))
	assert.Error(t, validate.Struct(digestRequest{Algorithm: "MD5"}))
}
