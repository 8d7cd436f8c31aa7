package middleware

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	ports "timeline-service/internal/domain/ports/output"
)

const RequestIDKey = "request_id"

// RequestLogger tags each request with an X-Request-ID, records HTTP
// metrics by route pattern and logs failures at warn or error level.
func RequestLogger(log ports.Logger, metrics ports.MetricsProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := utils.CopyString(c.Get(fiber.HeaderXRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, requestID)
		c.Locals(RequestIDKey, requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		method := utils.CopyString(c.Method())
		path := c.Route().Path
		statusText := strconv.Itoa(status)
		duration := time.Since(start)

		metrics.IncrementHTTPRequests(method, path, statusText)
		metrics.RecordHTTPRequestDuration(method, path, statusText, duration)

		attrs := []any{
			slog.String("request_id", requestID),
			slog.String("method", method),
			slog.String("path", utils.CopyString(c.Path())),
			slog.Int("status", status),
			slog.Duration("duration", duration),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error("HTTP request failed", attrs...)
		case status >= fiber.StatusBadRequest:
			log.Warn("HTTP request rejected", attrs...)
		default:
			log.Debug("HTTP request served", attrs...)
		}

		return err
	}
}
