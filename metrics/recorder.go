// Package metrics exports query counters and latencies to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values of citypath_queries_total.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
)

// Recorder counts and times path queries. It implements analysis.Observer
// and is safe for concurrent use.
type Recorder struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	hops     *prometheus.HistogramVec
}

// NewRecorder registers the query metrics with reg. A nil reg uses
// prometheus.DefaultRegisterer. Registering twice with the same registry
// panics, as with any Prometheus collector.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Recorder{
		// queries counts path queries by algorithm and outcome
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "citypath_queries_total",
			Help: "Total path queries by algorithm and result",
		}, []string{"algorithm", "result"}),

		// duration tracks query latency
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "citypath_query_duration_seconds",
			Help:    "Path query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"algorithm"}),

		// hops tracks the number of routes on found paths
		hops: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "citypath_path_hops",
			Help:    "Number of routes per found path",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		}, []string{"algorithm"}),
	}
}

// ObserveQuery records one query. Hops are only observed for found paths.
func (r *Recorder) ObserveQuery(algorithm string, found bool, hops int, elapsed time.Duration) {
	result := ResultNotFound
	if found {
		result = ResultFound
		r.hops.WithLabelValues(algorithm).Observe(float64(hops))
	}
	r.queries.WithLabelValues(algorithm, result).Inc()
	r.duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}
