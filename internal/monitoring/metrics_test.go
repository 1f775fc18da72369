package monitoring

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics("budget", prometheus.NewRegistry())

	m.Requests.WithLabelValues("GET", "/dashboard", "200").Inc()
	m.CampaignsCreated.Inc()
	m.RecordedSpend.Add(199.5)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CampaignsCreated))
	assert.Equal(t, 199.5, testutil.ToFloat64(m.RecordedSpend))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `budget_http_requests_total{method="GET",route="/dashboard",status="200"} 1`)
	assert.Contains(t, string(body), "budget_campaigns_created_total 1")
}

func TestNewMetrics_DefaultRegistry(t *testing.T) {
	m := NewMetrics("budget", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
