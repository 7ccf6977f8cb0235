//go:build unit
// +build unit

package v1

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(requestIDKey))
	})

	t.Run("KeepsValidID", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set(RequestIDHeader, "4a3c9d7e-8f0b-4c1a-9b2e-6d5f4e3c2b1a")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "4a3c9d7e-8f0b-4c1a-9b2e-6d5f4e3c2b1a", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "4a3c9d7e-8f0b-4c1a-9b2e-6d5f4e3c2b1a", w.Body.String())
	})

	t.Run("ReplacesInvalidID", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set(RequestIDHeader, "<script>")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
		assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	})
}

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/echo", func(ctx *gin.Context) {
		if _, err := io.ReadAll(ctx.Request.Body); err != nil {
			ctx.String(http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		ctx.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("POST", "/echo", bytes.NewBufferString(strings.Repeat("a", 9)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	req, _ = http.NewRequest("POST", "/echo", bytes.NewBufferString("small"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHTTPMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	metrics, err := NewHTTPMetrics(reg)
	require.NoError(t, err)

	r := gin.New()
	r.Use(metrics.Middleware())
	r.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, float64(3), promtestutil.ToFloat64(metrics.requests.WithLabelValues("/ping", "GET", "204")))

	_, err = NewHTTPMetrics(reg)
	assert.Error(t, err)
}
