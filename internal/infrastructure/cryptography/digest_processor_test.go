//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDigestProcessor(t *testing.T) cryptoalg.DigestProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewDigestProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestDigestProcessor(t *testing.T) {
	processor := setupDigestProcessor(t)

	t.Run("KnownVectors", func(t *testing.T) {
		tests := []struct {
			digest   cryptoalg.Digest
			expected string
		}{
			{cryptoalg.SHA1, "afd2bd72af0c346a2ab14d50746835d3ccd1dd5f"},
			{cryptoalg.SHA256, "7da544fa170151239b9886c0c905736fe3e8b07e68aefaba0633272aee47af87"},
			{cryptoalg.SHA384, "2bf236501ecea775cd0eac6da0632eb236e514f29c2aff06a42819fe3b1f3d5b8aefe8c1608a8f5a4d832090902f84a1"},
			{cryptoalg.SHA512, "5adf884c57a5dc4f353bb08a138953e98320c35843ec86dd42e866e9111f39f502dd250a31f421c9eae8b0593540c30b4ecba6f7f5356632aeea308ee5a5a206"},
		}

		for _, tt := range tests {
			t.Run(tt.digest.String(), func(t *testing.T) {
				out, err := processor.DigestText(tt.digest, "wuriyanto")
				require.NoError(t, err)
				assert.Equal(t, tt.expected, out)
				assert.Len(t, out, 2*tt.digest.Size())

				out, err = processor.Digest(tt.digest, []byte("wuriyanto"))
				require.NoError(t, err)
				assert.Equal(t, tt.expected, out)
			})
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		out, err := processor.Digest(cryptoalg.SHA256, nil)
		require.NoError(t, err)
		assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", out)
	})

	t.Run("UnknownDigest", func(t *testing.T) {
		_, err := processor.Digest(cryptoalg.Digest(42), []byte("wuriyanto"))
		assert.ErrorIs(t, err, cryptoalg.ErrUnknownAlgorithm)
		assert.Equal(t, cryptoalg.KindValidation, cryptoalg.KindOf(err))
	})
}
