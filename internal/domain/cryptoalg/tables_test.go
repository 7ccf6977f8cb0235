//go:build unit
// +build unit

package cryptoalg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{"CBC", ModeCBC, false},
		{"gcm", ModeGCM, false},
		{"AES-GCM", ModeGCM, false},
		{" aes-cbc ", ModeCBC, false},
		{"CTR", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownMode)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestModeParameters(t *testing.T) {
	assert.Equal(t, 16, ModeCBC.IVLength())
	assert.Equal(t, 12, ModeGCM.IVLength())
	assert.Equal(t, "AES-CBC", ModeCBC.Name())
	assert.Equal(t, "AES-GCM", ModeGCM.Name())
	assert.False(t, Mode(42).Valid())
}

func TestVariantForKeyLength(t *testing.T) {
	tests := []struct {
		length    int
		expected  AESVariant
		supported bool
		wantErr   bool
	}{
		{16, AES128, true, false},
		{24, AES192, false, false},
		{32, AES256, true, false},
		{0, 0, false, true},
		{31, 0, false, true},
		{64, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.length), func(t *testing.T) {
			variant, err := VariantForKeyLength(tt.length)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKeyLength)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, variant)
			assert.Equal(t, tt.supported, variant.Supported())
			assert.Equal(t, tt.length*8, variant.KeyBits())
		})
	}
}

func TestParseCipherSuite(t *testing.T) {
	suite, err := ParseCipherSuite("AES-256-GCM")
	require.NoError(t, err)
	assert.Equal(t, CipherSuite{Variant: AES256, Mode: ModeGCM}, suite)
	assert.Equal(t, "aes-256-gcm", suite.String())

	suite, err = ParseCipherSuite("aes-192-cbc")
	require.NoError(t, err)
	assert.False(t, suite.Variant.Supported())

	for _, bad := range []string{"aes-512-gcm", "des-128-cbc", "aes-128", "aes-x-cbc", "aes-128-ofb", "aes-256x-gcm", "aes-128 -cbc", "aes-1e2-gcm"} {
		_, err := ParseCipherSuite(bad)
		assert.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestDigestParameters(t *testing.T) {
	tests := []struct {
		names []string
		d     Digest
		size  int
	}{
		{[]string{"SHA-1", "sha1", "SHA1"}, SHA1, 20},
		{[]string{"SHA-256", "sha256"}, SHA256, 32},
		{[]string{"SHA-384", "sha-384"}, SHA384, 48},
		{[]string{"SHA-512", "Sha512"}, SHA512, 64},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			for _, name := range tt.names {
				d, err := ParseDigest(name)
				require.NoError(t, err, name)
				assert.Equal(t, tt.d, d)
			}
			assert.Equal(t, tt.size, tt.d.Size())
			assert.Equal(t, tt.d.Size(), tt.d.SaltLength())
			assert.Equal(t, tt.size, tt.d.Hash().Size())
			assert.True(t, tt.d.Hash().Available())
		})
	}

	_, err := ParseDigest("MD5")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestAlgorithmAllows(t *testing.T) {
	assert.True(t, AlgorithmRSAOAEP.Allows(UsageEncrypt))
	assert.True(t, AlgorithmRSAOAEP.Allows(UsageDecrypt))
	assert.False(t, AlgorithmRSAOAEP.Allows(UsageSign))
	assert.True(t, AlgorithmRSAPSS.Allows(UsageSign))
	assert.True(t, AlgorithmRSAPSS.Allows(UsageVerify))
	assert.False(t, AlgorithmRSAPSS.Allows(UsageDecrypt))
	assert.False(t, Algorithm("DSA").Allows(UsageSign))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err      error
		expected ErrorKind
	}{
		{nil, KindUnknown},
		{errors.New("boom"), KindUnknown},
		{ErrKeyTooShort, KindValidation},
		{fmt.Errorf("wrapped: %w", ErrUnsupportedVariant), KindValidation},
		{ErrMalformedKey, KindMalformedKey},
		{fmt.Errorf("x: %w", ErrProviderImport), KindProviderImport},
		{ErrAuthenticationFailed, KindAuthenticationFailed},
		{ErrDecryptionFailed, KindDecryptionFailed},
		{ErrPlaintextTooLarge, KindPlaintextTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}
