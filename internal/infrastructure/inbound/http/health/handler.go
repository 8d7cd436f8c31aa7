package health_http

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	ports "timeline-service/internal/domain/ports/output"
)

const defaultReadyTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Pingers is ready only when every member answers.
type Pingers []Pinger

func (p Pingers) Ping(ctx context.Context) error {
	for _, pinger := range p {
		if err := pinger.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}

type Handler struct {
	deps    Pinger
	timeout time.Duration
	log     ports.Logger
}

func NewHandler(deps Pinger, log ports.Logger) *Handler {
	return &Handler{
		deps:    deps,
		timeout: defaultReadyTimeout,
		log:     log,
	}
}

func (h *Handler) Register(router fiber.Router) {
	router.Get("/health", h.Health)
	router.Get("/ready", h.Ready)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready answers 503 while any dependency cannot be reached.
func (h *Handler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	if err := h.deps.Ping(ctx); err != nil {
		h.log.Warn("Readiness check failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not ready",
			"error":  "dependency unreachable",
		})
	}

	return c.JSON(fiber.Map{"status": "ready"})
}
