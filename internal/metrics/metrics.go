// Package metrics records page render counts and latencies.
package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder observes completed page renders. route is the matched pattern
// (empty for the fallback) and match is the router's match kind.
type Recorder interface {
	ObserveRender(route, match string, d time.Duration)
}

// NoopRecorder discards observations.
type NoopRecorder struct{}

// ObserveRender implements Recorder.
func (NoopRecorder) ObserveRender(string, string, time.Duration) {}

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	renders  *prom.CounterVec
	duration *prom.HistogramVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	pr := &PrometheusRecorder{
		renders: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "megjoni",
			Subsystem: "web",
			Name:      "renders_total",
			Help:      "Rendered documents by route pattern and match kind",
		}, []string{"route", "match"}),
		duration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "megjoni",
			Subsystem: "web",
			Name:      "render_duration_seconds",
			Help:      "Time spent resolving and rendering a document",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}, []string{"match"}),
	}
	reg.MustRegister(pr.renders, pr.duration)
	return pr
}

// ObserveRender implements Recorder.
func (p *PrometheusRecorder) ObserveRender(route, match string, d time.Duration) {
	if route == "" {
		route = "fallback"
	}
	p.renders.WithLabelValues(route, match).Inc()
	p.duration.WithLabelValues(match).Observe(d.Seconds())
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prom.Registry {
	reg := prom.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler exposes reg in the Prometheus text format.
func Handler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
