package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timeline"

// collectors holds one series family per MetricsProvider concern.
type collectors struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueries  *prometheus.CounterVec
	dbDuration *prometheus.HistogramVec

	cacheLookups  *prometheus.CounterVec
	cacheDuration *prometheus.HistogramVec

	postOperations *prometheus.CounterVec
	userOperations *prometheus.CounterVec

	health prometheus.Gauge
}

func newCollectors(reg prometheus.Registerer) *collectors {
	f := promauto.With(reg)

	return &collectors{
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),

		dbQueries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_queries_total",
			Help:      "Store queries by kind and outcome.",
		}, []string{"query", "success"}),
		dbDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Store query latency.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"query"}),

		cacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Timeline cache lookups by result.",
		}, []string{"result"}),
		cacheDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cache_operation_duration_seconds",
			Help:      "Timeline cache round-trip latency.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}, []string{"operation"}),

		postOperations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "post_operations_total",
			Help:      "Post use cases by operation and outcome.",
		}, []string{"operation", "success"}),
		userOperations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_operations_total",
			Help:      "User use cases by operation and outcome.",
		}, []string{"operation", "success"}),

		health: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "service_health",
			Help:      "1 while the service is serving, 0 otherwise.",
		}),
	}
}
