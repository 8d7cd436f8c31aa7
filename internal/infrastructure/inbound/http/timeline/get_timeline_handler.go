package timeline_http

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	model "timeline-service/internal/domain/models"
	ports "timeline-service/internal/domain/ports/output"
)

type TimelineGetter interface {
	GetLatestPosts(ctx context.Context, limit int) ([]*model.Post, error)
}

type GetTimelineHandler struct {
	timelineService TimelineGetter
	log             ports.Logger
}

func NewGetTimelineHandler(timelineService TimelineGetter, log ports.Logger) *GetTimelineHandler {
	return &GetTimelineHandler{
		timelineService: timelineService,
		log:             log,
	}
}

func (h *GetTimelineHandler) GetTimeline(c *fiber.Ctx) error {
	posts, err := h.timelineService.GetLatestPosts(c.UserContext(), model.DefaultTimelineLimit)
	if err != nil {
		h.log.Error("Failed to get timeline", slog.String("request_id", requestID(c)), slog.String("error", err.Error()))
		return writeError(c, fiber.StatusInternalServerError, "failed to get timeline")
	}

	h.log.Debug("Timeline retrieved", slog.Int("count", len(posts)))
	return c.JSON(NewTimelineResponse(posts))
}
