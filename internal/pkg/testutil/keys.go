package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// RSAKeySize is the modulus size of the generated fixtures.
const RSAKeySize = 2048

// RSAKeyPair holds a generated key and its PEM encodings.
type RSAKeyPair struct {
	Private *rsa.PrivateKey

	// PublicPEM is SPKI inside "PUBLIC KEY" armor.
	PublicPEM string
	// PrivatePEM is PKCS8 inside "PRIVATE KEY" armor.
	PrivatePEM string
	// PKCS1PrivatePEM is PKCS1 inside "RSA PRIVATE KEY" armor, which the loader rejects.
	PKCS1PrivatePEM string
}

var (
	fixtureOnce sync.Once
	fixtures    [2]*RSAKeyPair
	fixtureErr  error
)

// RSAKeyPairs returns two distinct key pairs generated once per test binary.
func RSAKeyPairs(t *testing.T) (*RSAKeyPair, *RSAKeyPair) {
	t.Helper()

	fixtureOnce.Do(func() {
		for i := range fixtures {
			fixtures[i], fixtureErr = newRSAKeyPair()
			if fixtureErr != nil {
				return
			}
		}
	})
	require.NoError(t, fixtureErr)

	return fixtures[0], fixtures[1]
}

// RSAKeyPairFixture returns the first fixture key pair.
func RSAKeyPairFixture(t *testing.T) *RSAKeyPair {
	t.Helper()
	kp, _ := RSAKeyPairs(t)
	return kp
}

func newRSAKeyPair() (*RSAKeyPair, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, RSAKeySize)
	if err != nil {
		return nil, err
	}

	spki, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, err
	}

	pkcs8, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	return &RSAKeyPair{
		Private:         privateKey,
		PublicPEM:       encodePEM("PUBLIC KEY", spki),
		PrivatePEM:      encodePEM("PRIVATE KEY", pkcs8),
		PKCS1PrivatePEM: encodePEM("RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(privateKey)),
	}, nil
}

// ECPublicKeyPEM returns an SPKI encoded P-256 public key, a valid SPKI structure that is not RSA.
func ECPublicKeyPEM(t *testing.T) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	spki, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return encodePEM("PUBLIC KEY", spki)
}

// ECPrivateKeyPEM returns a PKCS8 encoded P-256 private key.
func ECPrivateKeyPEM(t *testing.T) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	pkcs8, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	return encodePEM("PRIVATE KEY", pkcs8)
}

func encodePEM(blockType string, der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}))
}
