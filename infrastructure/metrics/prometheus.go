// ABOUTME: Prometheus implementation of the pipeline Metrics interface
// ABOUTME: Uses its own registry so tests and multiple pipelines never collide

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "feedreader"

// Prometheus records load outcomes, load latency and the rendered entry count
type Prometheus struct {
	registry *prometheus.Registry
	loads    *prometheus.CounterVec
	duration prometheus.Histogram
	entries  prometheus.Gauge
}

// NewPrometheus creates the collectors on a fresh registry
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		loads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_loads_total",
			Help:      "Finished feed loads by outcome",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_load_duration_seconds",
			Help:      "Time from load start to commit or discard",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms up to ~20s
		}),
		entries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rendered_entries",
			Help:      "Entries currently shown in the feed container",
		}),
	}
}

// ObserveLoad records one finished load
func (p *Prometheus) ObserveLoad(outcome string, duration time.Duration) {
	p.loads.WithLabelValues(outcome).Inc()
	p.duration.Observe(duration.Seconds())
}

// SetRenderedEntries records the container size
func (p *Prometheus) SetRenderedEntries(n int) {
	p.entries.Set(float64(n))
}

// Registry exposes the underlying registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus text format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
