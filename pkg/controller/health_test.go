package controller_test

import (
	"context"
	"errors"
	"launcher/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]controller.Check
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no checks",
			checks:     nil,
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok","checks":{}}`,
		},
		{
			name: "healthy",
			checks: map[string]controller.Check{
				"database": func(context.Context) error { return nil },
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok","checks":{"database":"ok"}}`,
		},
		{
			name: "failing",
			checks: map[string]controller.Check{
				"database": func(context.Context) error { return errors.New("connection refused") },
				"queue":    func(context.Context) error { return nil },
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","checks":{"database":"connection refused","queue":"ok"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			controller.Health(tt.checks).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
