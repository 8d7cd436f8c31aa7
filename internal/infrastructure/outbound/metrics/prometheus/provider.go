package prometheus

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	ports "timeline-service/internal/domain/ports/output"
)

var (
	defaultOnce       sync.Once
	defaultCollectors *collectors
)

type PrometheusMetricsProvider struct {
	c *collectors
}

// NewPrometheusMetricsProvider records into the default registry served by
// promhttp.Handler. All providers it returns share one set of collectors.
func NewPrometheusMetricsProvider() ports.MetricsProvider {
	defaultOnce.Do(func() {
		defaultCollectors = newCollectors(prometheus.DefaultRegisterer)
	})
	return &PrometheusMetricsProvider{c: defaultCollectors}
}

// NewPrometheusMetricsProviderWithRegisterer registers a fresh set of
// collectors on reg.
func NewPrometheusMetricsProviderWithRegisterer(reg prometheus.Registerer) ports.MetricsProvider {
	return &PrometheusMetricsProvider{c: newCollectors(reg)}
}

func (p *PrometheusMetricsProvider) IncrementHTTPRequests(method, path, status string) {
	p.c.httpRequests.WithLabelValues(method, path, status).Inc()
}

func (p *PrometheusMetricsProvider) RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	p.c.httpDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementDatabaseQueries(queryType string, success bool) {
	p.c.dbQueries.WithLabelValues(queryType, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) RecordDatabaseQueryDuration(queryType string, duration time.Duration) {
	p.c.dbDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementCacheHits() {
	p.c.cacheLookups.WithLabelValues("hit").Inc()
}

func (p *PrometheusMetricsProvider) IncrementCacheMisses() {
	p.c.cacheLookups.WithLabelValues("miss").Inc()
}

func (p *PrometheusMetricsProvider) RecordCacheOperationDuration(operation string, duration time.Duration) {
	p.c.cacheDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementPostOperations(operation string, success bool) {
	p.c.postOperations.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) IncrementUserOperations(operation string, success bool) {
	p.c.userOperations.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) SetServiceHealth(healthy bool) {
	v := 0.0
	if healthy {
		v = 1
	}
	p.c.health.Set(v)
}
