package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPath is the path prefix the profiling handlers are served under.
const PprofPath = "/debug/pprof/"

// PprofMux returns an http.ServeMux serving net/http/pprof under PprofPath.
// pprof.Index resolves named profiles (heap, goroutine, ...) relative to that
// prefix, so the mux must be mounted at PprofPath unchanged.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPath, pprof.Index)
	mux.HandleFunc(PprofPath+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPath+"profile", pprof.Profile)
	mux.HandleFunc(PprofPath+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPath+"trace", pprof.Trace)

	return mux
}
