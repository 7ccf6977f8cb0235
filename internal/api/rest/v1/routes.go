package v1

import (
	"net/http"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes sets up all the API routes for version 1 plus the health and metrics endpoints.
func SetupRoutes(r *gin.Engine, cryptoService cryptoalg.CryptoService, gatherer prometheus.Gatherer) {
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := r.Group(BasePath)

	cryptoHandler := NewCryptoHandler(cryptoService)

	// Hash Routes
	v1.POST("/digests", cryptoHandler.Digest)
	v1.POST("/hmacs", cryptoHandler.HMAC)
	v1.POST("/hmacs/verify", cryptoHandler.VerifyHMAC)

	// AES Routes
	v1.POST("/aes/encrypt", cryptoHandler.EncryptAES)
	v1.POST("/aes/decrypt", cryptoHandler.DecryptAES)

	// RSA Routes
	v1.POST("/rsa/encrypt", cryptoHandler.EncryptRSA)
	v1.POST("/rsa/decrypt", cryptoHandler.DecryptRSA)
	v1.POST("/rsa/sign", cryptoHandler.SignRSA)
	v1.POST("/rsa/verify", cryptoHandler.VerifyRSA)
}
