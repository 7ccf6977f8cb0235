//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCryptoService is a mock implementation of CryptoService
type MockCryptoService struct {
	mock.Mock
}

func (m *MockCryptoService) Digest(ctx context.Context, algorithm string, data []byte) (string, error) {
	args := m.Called(ctx, algorithm, data)
	return args.String(0), args.Error(1)
}

func (m *MockCryptoService) HMAC(ctx context.Context, algorithm, key string, data []byte) (string, error) {
	args := m.Called(ctx, algorithm, key, data)
	return args.String(0), args.Error(1)
}

func (m *MockCryptoService) VerifyHMAC(ctx context.Context, algorithm, key string, data []byte, tag string) (bool, error) {
	args := m.Called(ctx, algorithm, key, data, tag)
	return args.Bool(0), args.Error(1)
}

func (m *MockCryptoService) AESEncrypt(ctx context.Context, mode, key string, data []byte) (string, error) {
	args := m.Called(ctx, mode, key, data)
	return args.String(0), args.Error(1)
}

func (m *MockCryptoService) AESDecrypt(ctx context.Context, mode, key, envelope string) ([]byte, error) {
	args := m.Called(ctx, mode, key, envelope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoService) RSAEncryptOAEP(ctx context.Context, digest, publicPEM string, data []byte) ([]byte, error) {
	args := m.Called(ctx, digest, publicPEM, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoService) RSADecryptOAEP(ctx context.Context, digest, privatePEM string, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, digest, privatePEM, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoService) RSASignPSS(ctx context.Context, digest, privatePEM string, data []byte) ([]byte, error) {
	args := m.Called(ctx, digest, privatePEM, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoService) RSAVerifyPSS(ctx context.Context, digest, publicPEM string, signature, data []byte) (bool, error) {
	args := m.Called(ctx, digest, publicPEM, signature, data)
	return args.Bool(0), args.Error(1)
}

func (m *MockCryptoService) ToHex(data []byte) string {
	args := m.Called(data)
	return args.String(0)
}

func (m *MockCryptoService) FromHex(s string) []byte {
	args := m.Called(s)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]byte)
}
