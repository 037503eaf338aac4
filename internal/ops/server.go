// Package ops configures the operational HTTP server of the launcher: metrics,
// health and profiling endpoints. It exposes no domain operations.
package ops

import (
	"context"
	"fmt"
	"launcher/internal/config"
	"launcher/pkg/controller"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthPath is the path of the JSON health endpoint.
const HealthPath = "/healthz"

// Options holds configuration for the ops server. It is typically created
// from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// EnablePprof mounts the profiling handlers.
	EnablePprof bool
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MetricsPath:       cfg.HTTP.MetricsPath,
		EnablePprof:       cfg.HTTP.EnablePprof,
	}
}

// Pinger is satisfied by storage.Storage.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	// Database is checked by the health endpoint.
	Database Pinger
	// Registry collects the request metrics and serves every metric on the
	// metrics path.
	Registry *prometheus.Registry
}

// NewServer wires up and returns a configured *http.Server serving:
//   - Prometheus metrics at MetricsPath
//   - the health report at HealthPath
//   - pprof endpoints when enabled
//
// Requests are logged and timed by the controller middlewares.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry}))
	mux.Handle(HealthPath, controller.Health(map[string]controller.Check{
		"database": deps.Database.Ping,
	}))
	if opts.EnablePprof {
		mux.Handle(controller.PprofPath, controller.PprofMux())
	}

	handler, err := controller.WithMetrics(deps.Registry, mux)
	if err != nil {
		return nil, fmt.Errorf("could not instrument ops server: %w", err)
	}
	handler = controller.WithLogger(handler, HealthPath, opts.MetricsPath)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
	}, nil
}
