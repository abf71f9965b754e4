package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	rec := NewPrometheusRecorder(reg)

	rec.ObserveRender("/sale", "exact", 2*time.Millisecond)
	rec.ObserveRender("/sale", "exact", time.Millisecond)
	rec.ObserveRender("", "fallback", time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(rec.renders.WithLabelValues("/sale", "exact")))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.renders.WithLabelValues("fallback", "fallback")))
	require.Equal(t, 2, testutil.CollectAndCount(rec.duration))
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := NewRegistry()
	NewPrometheusRecorder(reg).ObserveRender("/", "exact", time.Millisecond)

	rr := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `megjoni_web_renders_total{match="exact",route="/"} 1`)
	require.Contains(t, string(body), "go_goroutines")
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveRender("/", "exact", time.Second)
}
