package timeline_http

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	model "timeline-service/internal/domain/models"
	ports "timeline-service/internal/domain/ports/output"
)

type NewPostsGetter interface {
	GetNewPostsSince(ctx context.Context, lastID int64) ([]*model.Post, error)
}

type GetNewPostsHandler struct {
	timelineService NewPostsGetter
	log             ports.Logger
}

func NewGetNewPostsHandler(timelineService NewPostsGetter, log ports.Logger) *GetNewPostsHandler {
	return &GetNewPostsHandler{
		timelineService: timelineService,
		log:             log,
	}
}

func (h *GetNewPostsHandler) GetNewPosts(c *fiber.Ctx) error {
	lastID := parseLastID(c.Query("lastId"))

	posts, err := h.timelineService.GetNewPostsSince(c.UserContext(), lastID)
	if err != nil {
		h.log.Error("Failed to get new posts", slog.String("request_id", requestID(c)), slog.Int64("last_id", lastID), slog.String("error", err.Error()))
		return writeError(c, fiber.StatusInternalServerError, "failed to get new posts")
	}

	h.log.Debug("New posts retrieved", slog.Int64("last_id", lastID), slog.Int("count", len(posts)))
	return c.JSON(NewTimelineResponse(posts))
}

// parseLastID reads an optional sign and the leading decimal digits,
// ignoring whatever follows. Anything else yields 0.
func parseLastID(raw string) int64 {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
