package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the pipeline's Prometheus collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	SlidesProcessed *prometheus.CounterVec
	Resolutions     *prometheus.CounterVec
	ContentDropped  *prometheus.CounterVec
	SlideFailures   *prometheus.CounterVec
	SlideDuration   prometheus.Histogram
}

// NewMetrics registers the pipeline collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		SlidesProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slide_redesign_slides_processed_total",
				Help: "Total number of slides redesigned, by final layout",
			},
			[]string{"layout"},
		),
		Resolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slide_redesign_resolutions_total",
				Help: "Total number of layout resolutions, by the rule that decided them",
			},
			[]string{"rule"},
		),
		ContentDropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slide_redesign_content_dropped_total",
				Help: "Total number of content items that found no slot",
			},
			[]string{"type"},
		),
		SlideFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slide_redesign_slide_failures_total",
				Help: "Total number of slides that failed, by pipeline stage",
			},
			[]string{"stage"},
		),
		SlideDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "slide_redesign_slide_duration_seconds",
				Help:    "Duration of single-slide processing in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
	}
}

// ObserveSlide records a successfully redesigned slide.
func (m *Metrics) ObserveSlide(layout, rule string, d time.Duration) {
	if m == nil {
		return
	}
	m.SlidesProcessed.WithLabelValues(layout).Inc()
	m.Resolutions.WithLabelValues(rule).Inc()
	m.SlideDuration.Observe(d.Seconds())
}

// ObserveDropped records n items of the given content type left unbound.
func (m *Metrics) ObserveDropped(contentType string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ContentDropped.WithLabelValues(contentType).Add(float64(n))
}

// ObserveFailure records a slide that failed at stage.
func (m *Metrics) ObserveFailure(stage string) {
	if m == nil {
		return
	}
	m.SlideFailures.WithLabelValues(stage).Inc()
}

// WriteTextfile writes the registry in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}
