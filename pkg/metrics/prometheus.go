package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	analysesTotal  *prometheus.CounterVec
	upstreamErrors *prometheus.CounterVec
	watchlistSize  prometheus.Gauge
	fetchDuration  *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockdash_analyses_total",
				Help: "Total number of ticker analyses by outcome",
			},
			[]string{"symbol", "outcome"},
		),
		upstreamErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockdash_upstream_errors_total",
				Help: "Total number of market-data collaborator failures",
			},
			[]string{"kind"},
		),
		watchlistSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "stockdash_watchlist_size",
				Help: "Current number of tickers on the watchlist",
			},
		),
		fetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockdash_fetch_duration_seconds",
				Help:    "Duration of external data fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordAnalysis records one analysis outcome for a symbol.
func (r *Recorder) RecordAnalysis(symbol, outcome string) {
	r.analysesTotal.WithLabelValues(symbol, outcome).Inc()
}

// RecordUpstreamError records a market-data failure by kind.
func (r *Recorder) RecordUpstreamError(kind string) {
	r.upstreamErrors.WithLabelValues(kind).Inc()
}

// SetWatchlistSize records the current watchlist length.
func (r *Recorder) SetWatchlistSize(n int) {
	r.watchlistSize.Set(float64(n))
}

// ObserveFetch records the duration of an external fetch.
func (r *Recorder) ObserveFetch(op string, seconds float64) {
	r.fetchDuration.WithLabelValues(op).Observe(seconds)
}
