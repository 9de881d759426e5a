package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveHTTP("/", "GET", 200, time.Millisecond)
	m.ObserveUpstream("refresh_token", "ok")
	m.IncFeatureReroll()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 404, rec.Code)
}

func TestObserve(t *testing.T) {
	m := New()
	m.ObserveHTTP("/oauth", "POST", 400, 5*time.Millisecond)
	m.ObserveHTTP("/oauth", "POST", 400, 5*time.Millisecond)
	m.ObserveUpstream("authorization_code", "upstream_error")
	m.IncFeatureReroll()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/oauth", "POST", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("authorization_code", "upstream_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.featureRerolls))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveUpstream("refresh_token", "ok")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "kreuzungen_auth_upstream_token_requests_total"))
}
