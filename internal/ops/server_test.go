package ops_test

import (
	"context"
	"errors"
	"io"
	"launcher/internal/ops"
	"launcher/pkg/logger"
	mockstorage "launcher/pkg/storage/mock"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestServer(t *testing.T, database ops.Pinger, enablePprof bool) *httptest.Server {
	t.Helper()

	srv, err := ops.NewServer(ops.Deps{Database: database, Registry: prometheus.NewRegistry()}, ops.Options{
		Addr:        ":0",
		MetricsPath: "/metrics",
		EnablePprof: enablePprof,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, string(body)
}

func TestHealthz(t *testing.T) {
	ctrl := gomock.NewController(t)
	database := mockstorage.NewMockStorage(ctrl)
	gomock.InOrder(
		database.EXPECT().Ping(gomock.Any()).Return(nil),
		database.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused")),
	)
	ts := newTestServer(t, database, false)

	status, body := get(t, ts.URL+ops.HealthPath)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"status":"ok","checks":{"database":"ok"}}`, body)

	status, body = get(t, ts.URL+ops.HealthPath)
	require.Equal(t, http.StatusServiceUnavailable, status)
	require.JSONEq(t, `{"status":"unavailable","checks":{"database":"connection refused"}}`, body)
}

func TestMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	database := mockstorage.NewMockStorage(ctrl)
	database.EXPECT().Ping(gomock.Any()).Return(nil)
	ts := newTestServer(t, database, false)

	status, _ := get(t, ts.URL+ops.HealthPath)
	require.Equal(t, http.StatusOK, status)

	status, body := get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "launcher_ops_http_request_duration_seconds")
}

func TestPprof(t *testing.T) {
	ctrl := gomock.NewController(t)
	database := mockstorage.NewMockStorage(ctrl)

	status, _ := get(t, newTestServer(t, database, false).URL+"/debug/pprof/")
	require.Equal(t, http.StatusNotFound, status)

	status, _ = get(t, newTestServer(t, database, true).URL+"/debug/pprof/")
	require.Equal(t, http.StatusOK, status)
}
