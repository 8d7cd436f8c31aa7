package metrics_server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-service/internal/infrastructure/logger"
	"timeline-service/internal/infrastructure/outbound/metrics/prometheus"
)

func TestMetricsServer_ExposesCollectors(t *testing.T) {
	metrics := prometheus.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)
	metrics.IncrementPostOperations("create", true)

	server := NewMetricsServer("127.0.0.1", 0, logger.New("test"))

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "service_health")
	assert.Contains(t, string(body), "post_operations_total")
}
