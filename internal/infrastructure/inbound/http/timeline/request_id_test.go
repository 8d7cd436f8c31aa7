package timeline_http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-service/internal/infrastructure/inbound/http/middleware"
	"timeline-service/internal/infrastructure/logger"
	"timeline-service/internal/infrastructure/outbound/metrics/prometheus"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestLogger(logger.New("test"), prometheus.NewPrometheusMetricsProvider()))
	app.Get("/id", func(c *fiber.Ctx) error {
		return c.SendString(requestID(c))
	})

	t.Run("Propagated from the client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(fiber.HeaderXRequestID, "req-42")

		resp, body := doRequest(t, app, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "req-42", string(body))
	})

	t.Run("Generated when absent", func(t *testing.T) {
		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/id", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, body)
		assert.Equal(t, resp.Header.Get(fiber.HeaderXRequestID), string(body))
	})

	t.Run("Empty without the middleware", func(t *testing.T) {
		bare := fiber.New()
		bare.Get("/id", func(c *fiber.Ctx) error { return c.SendString(requestID(c)) })

		_, body := doRequest(t, bare, httptest.NewRequest(http.MethodGet, "/id", nil))
		assert.Empty(t, body)
	})
}
