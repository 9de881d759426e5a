package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pysugar/kreuzungen-auth/internal/auth/strava"
	"go.uber.org/zap"
)

func TestWriteTokenError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "upstream", err: &strava.UpstreamError{Status: http.StatusTooManyRequests}, status: http.StatusTooManyRequests},
		{name: "wrapped upstream", err: errors.Join(errors.New("ctx"), &strava.UpstreamError{Status: 401}), status: 401},
		{name: "not found", err: strava.ErrNotFound, status: http.StatusNotFound},
		{name: "transport", err: errors.New("dial tcp: connection refused"), status: http.StatusBadGateway},
		{name: "store", err: fmt.Errorf("%w: redis down", strava.ErrStore), status: http.StatusInternalServerError},
		{name: "malformed", err: strava.ErrMalformedResponse, status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/oauth", nil)
			writeTokenError(w, r, zap.NewNop(), "Error fetching access token.", tt.err)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestWriteTokenError_Canceled(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/oauth", nil)
	writeTokenError(w, r, zap.NewNop(), "msg", fmt.Errorf("exchange: %w", context.Canceled))
	if w.Code != StatusClientClosedRequest {
		t.Errorf("status = %d, want %d", w.Code, StatusClientClosedRequest)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected no body for canceled request, got %q", w.Body.String())
	}
}
