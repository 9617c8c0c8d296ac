package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "flight_dashboard"

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard.
type Metrics struct {
	// Chart serving metrics.
	ChartRequests        *prometheus.CounterVec   // labels: chart, outcome={ok,not_found,bad_request,not_ready}
	ChartComputeDuration *prometheus.HistogramVec // labels: chart
	ChartCache           *prometheus.CounterVec   // labels: result={hit,miss}

	// Dataset metrics, set once after the startup load.
	DatasetRows         *prometheus.GaugeVec // labels: table={flights,airlines,airports}
	DatasetLoadDuration prometheus.Gauge
	UnresolvedCodes     *prometheus.GaugeVec // labels: kind={airline,airport,coords}
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith registers the dashboard metrics with reg. The CLI passes a
// private registry that is never scraped.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.ChartRequests,
		m.ChartComputeDuration,
		m.ChartCache,
		m.DatasetRows,
		m.DatasetLoadDuration,
		m.UnresolvedCodes,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ChartRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_requests_total",
			Help:      "Chart requests by chart id and outcome.",
		}, []string{"chart", "outcome"}),
		ChartComputeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chart_compute_duration_seconds",
			Help:      "Time spent aggregating the dataset for one chart (cache misses only).",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"chart"}),
		ChartCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_cache_total",
			Help:      "Chart cache lookups by result.",
		}, []string{"result"}),
		DatasetRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Rows loaded per input table.",
		}, []string{"table"}),
		DatasetLoadDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_load_duration_seconds",
			Help:      "Wall time of the startup dataset load and enrichment.",
		}),
		UnresolvedCodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_unresolved_codes",
			Help:      "Distinct flight codes with no reference entry, by kind.",
		}, []string{"kind"}),
	}
}
