package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Comparison metrics
	ComparisonsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rebin_comparisons_total",
			Help: "Total number of comparison passes run",
		},
	)

	RepresentationsCompared = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rebin_representations_compared_total",
			Help: "Total number of representations laid out by outcome",
		},
		[]string{"outcome"},
	)

	// Layout metrics
	LayoutFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rebin_layout_failures_total",
			Help: "Total number of layout failures by reason",
		},
		[]string{"reason"},
	)

	DegenerateLayoutsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rebin_degenerate_layouts_total",
			Help: "Total number of layouts that used the placeholder fallback interval",
		},
	)

	LayoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rebin_layout_duration_seconds",
			Help:    "Time taken by one full comparison pass in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(ComparisonsTotal)
	prometheus.MustRegister(RepresentationsCompared)
	prometheus.MustRegister(LayoutFailuresTotal)
	prometheus.MustRegister(DegenerateLayoutsTotal)
	prometheus.MustRegister(LayoutDuration)
}

// Handler returns the Prometheus HTTP handler for embedding. Rebin never
// starts a server itself.
func Handler() http.Handler {
	return promhttp.Handler()
}
