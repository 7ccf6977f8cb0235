package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/codec"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CryptoHandler defines the interface for handling cryptographic operations
type CryptoHandler interface {
	Digest(ctx *gin.Context)
	HMAC(ctx *gin.Context)
	VerifyHMAC(ctx *gin.Context)
	EncryptAES(ctx *gin.Context)
	DecryptAES(ctx *gin.Context)
	EncryptRSA(ctx *gin.Context)
	DecryptRSA(ctx *gin.Context)
	SignRSA(ctx *gin.Context)
	VerifyRSA(ctx *gin.Context)
}

// cryptoHandler struct holds the facade
type cryptoHandler struct {
	cryptoService cryptoalg.CryptoService
}

// NewCryptoHandler creates a new CryptoHandler
func NewCryptoHandler(cryptoService cryptoalg.CryptoService) CryptoHandler {
	return &cryptoHandler{
		cryptoService: cryptoService,
	}
}

type validatable interface {
	Validate() error
}

// bind decodes and validates the JSON body. It writes the error response itself and reports
// whether the handler should continue.
func bind(ctx *gin.Context, request validatable) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)})
			return false
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err)})
		return false
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: validationMessage(err)})
		return false
	}

	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return "validation failed: " + strings.Join(fields, "; ")
}

// StatusForError maps an error kind to the HTTP status returned to the client
func StatusForError(err error) int {
	switch cryptoalg.KindOf(err) {
	case cryptoalg.KindValidation, cryptoalg.KindMalformedKey, cryptoalg.KindProviderImport, cryptoalg.KindPlaintextTooLarge:
		return http.StatusBadRequest
	case cryptoalg.KindAuthenticationFailed, cryptoalg.KindDecryptionFailed:
		return http.StatusUnprocessableEntity
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func abortWithError(ctx *gin.Context, operation string, err error) {
	_ = ctx.Error(err)
	ctx.JSON(StatusForError(err), ErrorResponse{Message: fmt.Sprintf("%s failed: %v", operation, err)})
}

// Digest handles the POST request to hash text
// @Summary Compute a SHA digest
// @Tags Digest
// @Accept json
// @Produce json
// @Param requestBody body DigestRequest true "Digest request"
// @Success 200 {object} DigestResponse
// @Failure 400 {object} ErrorResponse
// @Router /digests [post]
func (handler *cryptoHandler) Digest(ctx *gin.Context) {
	var request DigestRequest
	if !bind(ctx, &request) {
		return
	}

	digest, err := handler.cryptoService.Digest(ctx.Request.Context(), request.Algorithm, codec.TextToBytes(request.Data))
	if err != nil {
		abortWithError(ctx, "digest", err)
		return
	}

	ctx.JSON(http.StatusOK, DigestResponse{Digest: digest})
}

// HMAC handles the POST request to compute an HMAC tag
// @Summary Compute an HMAC
// @Tags HMAC
// @Accept json
// @Produce json
// @Param requestBody body HMACRequest true "HMAC request"
// @Success 200 {object} HMACResponse
// @Failure 400 {object} ErrorResponse
// @Router /hmacs [post]
func (handler *cryptoHandler) HMAC(ctx *gin.Context) {
	var request HMACRequest
	if !bind(ctx, &request) {
		return
	}

	mac, err := handler.cryptoService.HMAC(ctx.Request.Context(), request.Algorithm, request.Key, codec.TextToBytes(request.Data))
	if err != nil {
		abortWithError(ctx, "hmac", err)
		return
	}

	ctx.JSON(http.StatusOK, HMACResponse{MAC: mac})
}

// VerifyHMAC handles the POST request to verify an HMAC tag
// @Summary Verify an HMAC
// @Tags HMAC
// @Accept json
// @Produce json
// @Param requestBody body VerifyHMACRequest true "HMAC verification request"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /hmacs/verify [post]
func (handler *cryptoHandler) VerifyHMAC(ctx *gin.Context) {
	var request VerifyHMACRequest
	if !bind(ctx, &request) {
		return
	}

	valid, err := handler.cryptoService.VerifyHMAC(ctx.Request.Context(), request.Algorithm, request.Key, codec.TextToBytes(request.Data), request.MAC)
	if err != nil {
		abortWithError(ctx, "hmac verification", err)
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}

// EncryptAES handles the POST request to encrypt text with AES
// @Summary Encrypt with AES-CBC or AES-GCM
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body AESEncryptRequest true "AES encryption request"
// @Success 200 {object} AESEncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /aes/encrypt [post]
func (handler *cryptoHandler) EncryptAES(ctx *gin.Context) {
	var request AESEncryptRequest
	if !bind(ctx, &request) {
		return
	}

	envelope, err := handler.cryptoService.AESEncrypt(ctx.Request.Context(), request.Mode, request.Key, codec.TextToBytes(request.Plaintext))
	if err != nil {
		abortWithError(ctx, "AES encryption", err)
		return
	}

	ctx.JSON(http.StatusOK, AESEncryptResponse{Envelope: envelope})
}

// DecryptAES handles the POST request to decrypt an AES envelope
// @Summary Decrypt an AES envelope
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body AESDecryptRequest true "AES decryption request"
// @Success 200 {object} PlaintextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /aes/decrypt [post]
func (handler *cryptoHandler) DecryptAES(ctx *gin.Context) {
	var request AESDecryptRequest
	if !bind(ctx, &request) {
		return
	}

	plaintext, err := handler.cryptoService.AESDecrypt(ctx.Request.Context(), request.Mode, request.Key, request.Envelope)
	if err != nil {
		abortWithError(ctx, "AES decryption", err)
		return
	}

	ctx.JSON(http.StatusOK, plaintextResponse(plaintext))
}

// EncryptRSA handles the POST request to encrypt text with RSA-OAEP
// @Summary Encrypt with RSA-OAEP
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body RSAEncryptRequest true "RSA encryption request"
// @Success 200 {object} RSAEncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /rsa/encrypt [post]
func (handler *cryptoHandler) EncryptRSA(ctx *gin.Context) {
	var request RSAEncryptRequest
	if !bind(ctx, &request) {
		return
	}

	ciphertext, err := handler.cryptoService.RSAEncryptOAEP(ctx.Request.Context(), request.Digest, request.PublicKey, codec.TextToBytes(request.Plaintext))
	if err != nil {
		abortWithError(ctx, "RSA encryption", err)
		return
	}

	ctx.JSON(http.StatusOK, RSAEncryptResponse{Ciphertext: codec.ToHex(ciphertext)})
}

// DecryptRSA handles the POST request to decrypt RSA-OAEP ciphertext
// @Summary Decrypt with RSA-OAEP
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body RSADecryptRequest true "RSA decryption request"
// @Success 200 {object} PlaintextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /rsa/decrypt [post]
func (handler *cryptoHandler) DecryptRSA(ctx *gin.Context) {
	var request RSADecryptRequest
	if !bind(ctx, &request) {
		return
	}

	plaintext, err := handler.cryptoService.RSADecryptOAEP(ctx.Request.Context(), request.Digest, request.PrivateKey, codec.FromHex(request.Ciphertext))
	if err != nil {
		abortWithError(ctx, "RSA decryption", err)
		return
	}

	ctx.JSON(http.StatusOK, plaintextResponse(plaintext))
}

// SignRSA handles the POST request to sign text with RSA-PSS
// @Summary Sign with RSA-PSS
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body RSASignRequest true "RSA signing request"
// @Success 200 {object} RSASignResponse
// @Failure 400 {object} ErrorResponse
// @Router /rsa/sign [post]
func (handler *cryptoHandler) SignRSA(ctx *gin.Context) {
	var request RSASignRequest
	if !bind(ctx, &request) {
		return
	}

	signature, err := handler.cryptoService.RSASignPSS(ctx.Request.Context(), request.Digest, request.PrivateKey, codec.TextToBytes(request.Data))
	if err != nil {
		abortWithError(ctx, "RSA signing", err)
		return
	}

	ctx.JSON(http.StatusOK, RSASignResponse{Signature: codec.ToHex(signature)})
}

// VerifyRSA handles the POST request to verify an RSA-PSS signature
// @Summary Verify an RSA-PSS signature
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body RSAVerifyRequest true "RSA verification request"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /rsa/verify [post]
func (handler *cryptoHandler) VerifyRSA(ctx *gin.Context) {
	var request RSAVerifyRequest
	if !bind(ctx, &request) {
		return
	}

	valid, err := handler.cryptoService.RSAVerifyPSS(ctx.Request.Context(), request.Digest, request.PublicKey,
		codec.FromHex(request.Signature), codec.TextToBytes(request.Data))
	if err != nil {
		abortWithError(ctx, "RSA verification", err)
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}

func plaintextResponse(plaintext []byte) PlaintextResponse {
	return PlaintextResponse{
		Plaintext:    codec.BytesToText(plaintext),
		PlaintextHex: codec.ToHex(plaintext),
	}
}
