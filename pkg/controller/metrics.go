package controller

import (
	"fmt"
	"launcher/pkg/metrics"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WithMetrics returns a middleware recording the latency of every request by
// method and status code in registerer.
func WithMetrics(registerer prometheus.Registerer, next http.Handler) (http.Handler, error) {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "launcher",
		Subsystem: "ops_http",
		Name:      "request_duration_seconds",
		Help:      "Latency of ops HTTP requests.",
		Buckets:   metrics.DefaultBuckets,
	}, []string{"method", "code"})
	if err := registerer.Register(duration); err != nil {
		return nil, fmt.Errorf("could not register request duration histogram: %w", err)
	}

	return promhttp.InstrumentHandlerDuration(duration, next), nil
}
