//go:build unit
// +build unit

package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, url, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	req, err := http.NewRequest("POST", url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestCryptoHandler_Digest_Success(t *testing.T) {
	mockService := new(MockCryptoService)
	handler := NewCryptoHandler(mockService)

	mockService.
		On("Digest", mock.Anything, "SHA-256", []byte("wuriyanto")).
		Return("7da544fa170151239b9886c0c905736fe3e8b07e68aefaba0633272aee47af87", nil)

	c, w := newTestContext(t, "/digests", `{"algorithm": "SHA-256", "data": "wuriyanto"}`)
	handler.Digest(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response DigestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "7da544fa170151239b9886c0c905736fe3e8b07e68aefaba0633272aee47af87", response.Digest)
	mockService.AssertExpectations(t)
}

func TestCryptoHandler_Digest_ValidationFailure(t *testing.T) {
	mockService := new(MockCryptoService)
	handler := NewCryptoHandler(mockService)

	c, w := newTestContext(t, "/digests", `{"algorithm": "MD5", "data": "wuriyanto"}`)
	handler.Digest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "Algorithm")
	mockService.AssertNotCalled(t, "Digest", mock.Anything, mock.Anything, mock.Anything)
}

func TestCryptoHandler_InvalidJSON(t *testing.T) {
	mockService := new(MockCryptoService)
	handler := NewCryptoHandler(mockService)

	c, w := newTestContext(t, "/hmacs", `{"algorithm":`)
	handler.HMAC(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "invalid request body")
}

func TestCryptoHandler_BodyTooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockCryptoService)
	handler := NewCryptoHandler(mockService)

	r := gin.New()
	r.Use(BodyLimit(64))
	r.POST("/aes/encrypt", handler.EncryptAES)

	body := fmt.Sprintf(`{"mode": "GCM", "key": "abcdefghijklmnop", "plaintext": %q}`, strings.Repeat("a", 128))
	req, err := http.NewRequest("POST", "/aes/encrypt", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "exceeds 64 bytes")
	mockService.AssertNotCalled(t, "AESEncrypt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCryptoHandler_HMAC_KeyTooShort(t *testing.T) {
	mockService := new(MockCryptoService)
	handler := NewCryptoHandler(mockService)

	mockService.
		On("HMAC", mock.Anything, "SHA-1", "short", []byte("wuriyanto")).
		Return("", fmt.Errorf("%w: min key length must be 32 bytes", cryptoalg.ErrKeyTooShort))

	c, w := newTestContext(t, "/hmacs", `{"algorithm": "SHA-1", "key": "short", "data": "wuriyanto"}`)
	handler.HMAC(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "key too short")
	mockService.AssertExpectations(t)
}

func TestCryptoHandler_VerifyHMAC(t *testing.T) {
	mockService := new(MockCryptoService)
	handler := NewCryptoHandler(mockService)

	mockService.
		On("VerifyHMAC", mock.Anything, "SHA-256", "abcdefghijklmnopqrstuvwxyz012345", []byte("wuriyanto"), "e1d11b6c").
		Return(false, nil)

	c, w := newTestContext(t, "/hmacs/verify",
		`{"algorithm": "SHA-256", "key": "abcdefghijklmnopqrstuvwxyz012345", "data": "wuriyanto", "mac": "e1d11b6c"}`)
	handler.VerifyHMAC(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid": false}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestCryptoHandler_EncryptAES_Success(t *testing.T) {
	mockService := new(MockCryptoService)
	handler := NewCryptoHandler(mockService)

	mockService.
		On("AESEncrypt", mock.Anything, "aes-128-gcm", "abcdefghijklmnop", []byte("wuriyanto")).
		Return("00112233", nil)

	c, w := newTestContext(t, "/aes/encrypt", `{"mode": "aes-128-gcm", "key": "abcdefghijklmnop", "plaintext": "wuriyanto"}`)
	handler.EncryptAES(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"envelope": "00112233"}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestCryptoHandler_EncryptAES_InvalidKeyLength(t *testing.T) {
	mockService := new(MockCryptoService)
	handler := NewCryptoHandler(mockService)

	c, w := newTestContext(t, "/aes/encrypt", `{"mode": "GCM", "key": "shortkey", "plaintext": "wuriyanto"}`)
	handler.EncryptAES(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "aeskey")
}

func TestCryptoHandler_DecryptAES(t *testing.T) {
	tests := []struct {
		name       string
		result     []byte
		err        error
		statusCode int
	}{
		{"Success", []byte("wuriyanto"), nil, http.StatusOK},
		{"AuthenticationFailed", nil, cryptoalg.ErrAuthenticationFailed, http.StatusUnprocessableEntity},
		{"DecryptionFailed", nil, cryptoalg.ErrDecryptionFailed, http.StatusUnprocessableEntity},
		{"UnsupportedVariant", nil, cryptoalg.ErrUnsupportedVariant, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCryptoService)
			handler := NewCryptoHandler(mockService)

			mockService.
				On("AESDecrypt", mock.Anything, "CBC", "abcdefghijklmnop", "00112233").
				Return(tt.result, tt.err)

			c, w := newTestContext(t, "/aes/decrypt", `{"mode": "CBC", "key": "abcdefghijklmnop", "envelope": "00112233"}`)
			handler.DecryptAES(c)

			assert.Equal(t, tt.statusCode, w.Code)
			if tt.err == nil {
				assert.JSONEq(t, `{"plaintext": "wuriyanto", "plaintext_hex": "7775726979616e746f"}`, w.Body.String())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestCryptoHandler_EncryptRSA(t *testing.T) {
	mockService := new(MockCryptoService)
	handler := NewCryptoHandler(mockService)

	mockService.
		On("RSAEncryptOAEP", mock.Anything, "SHA-256", "pem", []byte("wuriyanto")).
		Return([]byte{0xde, 0xad}, nil)

	c, w := newTestContext(t, "/rsa/encrypt", `{"digest": "SHA-256", "public_key": "pem", "plaintext": "wuriyanto"}`)
	handler.EncryptRSA(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ciphertext": "dead"}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestCryptoHandler_EncryptRSA_TooLarge(t *testing.T) {
	mockService := new(MockCryptoService)
	handler := NewCryptoHandler(mockService)

	mockService.
		On("RSAEncryptOAEP", mock.Anything, "SHA-512", "pem", mock.Anything).
		Return(nil, cryptoalg.ErrPlaintextTooLarge)

	c, w := newTestContext(t, "/rsa/encrypt", `{"digest": "SHA-512", "public_key": "pem", "plaintext": "wuriyanto"}`)
	handler.EncryptRSA(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestCryptoHandler_DecryptRSA(t *testing.T) {
	mockService := new(MockCryptoService)
	handler := NewCryptoHandler(mockService)

	mockService.
		On("RSADecryptOAEP", mock.Anything, "SHA-1", "pem", []byte{0xde, 0xad}).
		Return(nil, cryptoalg.ErrDecryptionFailed)

	c, w := newTestContext(t, "/rsa/decrypt", `{"digest": "SHA-1", "private_key": "pem", "ciphertext": "DEAD"}`)
	handler.DecryptRSA(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "RSA decryption failed: decryption failed", decodeError(t, w).Message)
	mockService.AssertExpectations(t)
}

func TestCryptoHandler_SignAndVerifyRSA(t *testing.T) {
	mockService := new(MockCryptoService)
	handler := NewCryptoHandler(mockService)

	mockService.
		On("RSASignPSS", mock.Anything, "SHA-384", "private", []byte("wuriyanto")).
		Return([]byte{0x01, 0x02}, nil)
	mockService.
		On("RSAVerifyPSS", mock.Anything, "SHA-384", "public", []byte{0x01, 0x02}, []byte("wuriyanto")).
		Return(true, nil)

	c, w := newTestContext(t, "/rsa/sign", `{"digest": "SHA-384", "private_key": "private", "data": "wuriyanto"}`)
	handler.SignRSA(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"signature": "0102"}`, w.Body.String())

	c, w = newTestContext(t, "/rsa/verify", `{"digest": "SHA-384", "public_key": "public", "signature": "0102", "data": "wuriyanto"}`)
	handler.VerifyRSA(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid": true}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{cryptoalg.ErrInvalidKeyLength, http.StatusBadRequest},
		{cryptoalg.ErrMalformedKey, http.StatusBadRequest},
		{cryptoalg.ErrProviderImport, http.StatusBadRequest},
		{cryptoalg.ErrPlaintextTooLarge, http.StatusBadRequest},
		{cryptoalg.ErrAuthenticationFailed, http.StatusUnprocessableEntity},
		{cryptoalg.ErrDecryptionFailed, http.StatusUnprocessableEntity},
		{fmt.Errorf("digest cancelled: %w", context.Canceled), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, StatusForError(tt.err))
		})
	}
}
