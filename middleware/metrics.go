package middleware

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/samestrin/mcpkit/jsonrpc"
)

// Metrics records per-method call counts and durations via Prometheus. It
// is constructed against a caller-provided registerer so a host can choose
// the default global registry or an isolated one in tests.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	durationSeconds *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mcpkit_requests_total",
			Help: "Total number of MCP messages dispatched, by method and status.",
		}, []string{"method", "status"}),
		durationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mcpkit_request_duration_seconds",
			Help:    "MCP message dispatch duration in seconds, by method.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"method"}),
	}
}

func (m *Metrics) Wrap(next MessageHandlerFunc) MessageHandlerFunc {
	return func(ctx context.Context, msg jsonrpc.SendableMessage) *jsonrpc.ResponseItem {
		method, _, ok := methodAndParams(msg)
		if !ok {
			return next(ctx, msg)
		}

		start := time.Now()
		item := next(ctx, msg)
		m.durationSeconds.WithLabelValues(method).Observe(time.Since(start).Seconds())

		status := "success"
		if item != nil && item.Error != nil {
			status = "error"
		}
		m.requestsTotal.WithLabelValues(method, status).Inc()
		return item
	}
}
