package inspect

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the host's frame loop instrumentation, registered on a
// private registry so tests can run side by side.
type Metrics struct {
	registry *prometheus.Registry

	FramesTotal   prometheus.Counter
	FrameDuration prometheus.Histogram
	Parameters    prometheus.Gauge
	Drawables     prometheus.Gauge
	Subscribers   prometheus.Gauge
}

// NewMetrics creates and registers the frame loop metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FramesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marionette_frames_total",
			Help: "Number of completed model updates.",
		}),
		FrameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "marionette_frame_duration_seconds",
			Help:    "Wall time of one model update.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		Parameters: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "marionette_parameters",
			Help: "Authored parameter count of the loaded puppet.",
		}),
		Drawables: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "marionette_drawables",
			Help: "Authored drawable count of the loaded puppet.",
		}),
		Subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "marionette_inspector_subscribers",
			Help: "Connected inspector clients.",
		}),
	}
	m.registry.MustRegister(
		m.FramesTotal,
		m.FrameDuration,
		m.Parameters,
		m.Drawables,
		m.Subscribers,
	)
	return m
}

// Handler returns the /metrics handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
