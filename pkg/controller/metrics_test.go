package controller_test

import (
	"launcher/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	handler, err := controller.WithMetrics(registry, next)
	require.NoError(t, err)

	for range 3 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	}

	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	require.Equal(t, "launcher_ops_http_request_duration_seconds", families[0].GetName())
	require.Equal(t, uint64(3), families[0].GetMetric()[0].GetHistogram().GetSampleCount())

	_, err = controller.WithMetrics(registry, next)
	require.Error(t, err, "the histogram can only be registered once per registry")
}
