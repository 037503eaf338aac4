// Package controller contains HTTP middlewares and helper handlers used by the ops server.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Records request latency in a Prometheus histogram.
//
// Provided helpers:
//   - Health: Runs dependency checks and reports them as JSON.
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
