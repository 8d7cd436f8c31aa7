package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	ports "timeline-service/internal/domain/ports/output"
	"timeline-service/internal/infrastructure/config"
	health_http "timeline-service/internal/infrastructure/inbound/http/health"
	"timeline-service/internal/infrastructure/inbound/http/middleware"
	timeline_http "timeline-service/internal/infrastructure/inbound/http/timeline"
)

type Server struct {
	app  *fiber.App
	addr string
	log  ports.Logger
}

func NewServer(
	timelineAPI *timeline_http.TimelineHTTPService,
	health *health_http.Handler,
	cfg config.HTTPServer,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "timeline-service",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log, metrics))

	health.Register(app)
	timelineAPI.Register(app)

	return &Server{
		app:  app,
		addr: cfg.ListenAddr(),
		log:  log,
	}
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.String("address", s.addr))
	if err := s.app.Listen(s.addr); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// errorHandler renders errors that escape handlers, including recovered
// panics and unmatched routes, as {"error": ...}.
func errorHandler(log ports.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			requestID, _ := c.Locals(middleware.RequestIDKey).(string)
			log.Error("Unhandled HTTP error",
				slog.String("request_id", requestID),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()))
			message = "internal server error"
		}

		return c.Status(code).JSON(timeline_http.ErrorResponse{Error: message})
	}
}
