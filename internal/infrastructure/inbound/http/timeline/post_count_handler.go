package timeline_http

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	ports "timeline-service/internal/domain/ports/output"
)

type PostCounter interface {
	GetPostCount(ctx context.Context) (int64, error)
}

type PostCountHandler struct {
	timelineService PostCounter
	log             ports.Logger
}

func NewPostCountHandler(timelineService PostCounter, log ports.Logger) *PostCountHandler {
	return &PostCountHandler{
		timelineService: timelineService,
		log:             log,
	}
}

func (h *PostCountHandler) CountPosts(c *fiber.Ctx) error {
	count, err := h.timelineService.GetPostCount(c.UserContext())
	if err != nil {
		h.log.Error("Failed to count posts", slog.String("request_id", requestID(c)), slog.String("error", err.Error()))
		return writeError(c, fiber.StatusInternalServerError, "failed to count posts")
	}
	return c.JSON(PostCountResponse{Count: count})
}
