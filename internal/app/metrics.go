package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"

	"github.com/prometheus/client_golang/prometheus"
)

const outcomeOK = "ok"

// OperationMetrics counts facade operations by outcome and observes their latency.
type OperationMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewOperationMetrics creates the collectors and registers them with reg.
func NewOperationMetrics(reg prometheus.Registerer) (*OperationMetrics, error) {
	m := &OperationMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crypto_facade",
			Name:      "operations_total",
			Help:      "Number of cryptographic operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "crypto_facade",
			Name:      "operation_duration_seconds",
			Help:      "Latency of cryptographic operations.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"operation"}),
	}

	operations, err := register(reg, m.operations)
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, m.duration)
	if err != nil {
		return nil, err
	}
	m.operations, m.duration = operations, duration

	return m, nil
}

// register returns the collector already registered under the same descriptor, if any, so that
// several services in one process share a series.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("failed to register metrics: %w", err)
	}
	return c, nil
}

func (m *OperationMetrics) observe(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, outcome(err)).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	return cryptoalg.KindOf(err).String()
}
