package controller

import (
	"context"
	"launcher/pkg/logger"
	"maps"
	"net/http"
	"slices"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

// Health returns a handler running every check and reporting the results as
// a JSON object:
//
//	{"status":"ok","checks":{"database":"ok"}}
//
// The response status is 503 when any check fails.
func Health(checks map[string]Check) http.Handler {
	names := slices.Sorted(maps.Keys(checks))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		failures := make(map[string]error, len(checks))
		for _, name := range names {
			if err := checks[name](r.Context()); err != nil {
				logger.Warn(r.Context(), "health check failed", zap.String("check", name), zap.Error(err))
				failures[name] = err
				status = http.StatusServiceUnavailable
			}
		}

		var e jx.Encoder
		e.Obj(func(e *jx.Encoder) {
			e.Field("status", func(e *jx.Encoder) {
				if status == http.StatusOK {
					e.Str("ok")
				} else {
					e.Str("unavailable")
				}
			})
			e.Field("checks", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					for _, name := range names {
						e.Field(name, func(e *jx.Encoder) {
							if err, failed := failures[name]; failed {
								e.Str(err.Error())
							} else {
								e.Str("ok")
							}
						})
					}
				})
			})
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(e.Bytes())
	})
}
