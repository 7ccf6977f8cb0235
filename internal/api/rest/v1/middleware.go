package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/crypto-facade/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID reuses a valid incoming X-Request-ID or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		ctx.Set(requestIDKey, requestID)
		ctx.Header(RequestIDHeader, requestID)
		ctx.Next()
	}
}

// BodyLimit caps the size of request bodies
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Body != nil {
			ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		}
		ctx.Next()
	}
}

// AccessLog logs one line per request with its id, status and latency
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		entry := log.With(
			"request_id", ctx.GetString(requestIDKey),
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"status", ctx.Writer.Status(),
			"latency", time.Since(start).String(),
		)
		if len(ctx.Errors) > 0 {
			entry.Warn("request failed: ", ctx.Errors.String())
			return
		}
		entry.Info("request handled")
	}
}

// HTTPMetrics records request counts and latencies per route
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics creates the collectors and registers them with reg
func NewHTTPMetrics(reg prometheus.Registerer) (*HTTPMetrics, error) {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crypto_facade",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Number of HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "crypto_facade",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	if err := reg.Register(m.requests); err != nil {
		return nil, err
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}

	return m, nil
}

// Middleware observes every request that matched a route
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, ctx.Request.Method, strconv.Itoa(ctx.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, ctx.Request.Method).Observe(time.Since(start).Seconds())
	}
}
