package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"timeline-service/internal/custom_errors"
	model "timeline-service/internal/domain/models"
	ports "timeline-service/internal/domain/ports/output"
)

const (
	timelineKeyPrefix  = "timeline:"
	generationKey      = timelineKeyPrefix + "gen"
	latestKeyPrefix    = timelineKeyPrefix + "latest:"
	countKeyPrefix     = timelineKeyPrefix + "count:"
	defaultTimelineTTL = 5 * time.Second
)

// TimelineCache keeps short-lived copies of the newest-posts page and the
// post count under generation-scoped keys. Entries of older generations are
// left to expire.
type TimelineCache struct {
	client *Client
	log    ports.Logger
	ttl    time.Duration
}

func NewTimelineCache(client *Client, log ports.Logger, ttl time.Duration) *TimelineCache {
	if ttl <= 0 {
		ttl = defaultTimelineTTL
	}
	return &TimelineCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (t *TimelineCache) Generation(ctx context.Context) (int64, error) {
	gen, err := t.client.GetInt(ctx, generationKey)
	if err != nil {
		return 0, fmt.Errorf("failed to read timeline generation: %w", err)
	}
	return gen, nil
}

func (t *TimelineCache) GetLatest(ctx context.Context, gen int64, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	if err := t.client.GetJSON(ctx, latestKey(gen, limit), &posts); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, custom_errors.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get latest posts from cache: %w", err)
	}
	if posts == nil {
		posts = make([]*model.Post, 0)
	}
	return posts, nil
}

func (t *TimelineCache) SetLatest(ctx context.Context, gen int64, limit int, posts []*model.Post) error {
	if err := t.client.SetJSON(ctx, latestKey(gen, limit), posts, t.ttl); err != nil {
		return fmt.Errorf("failed to set latest posts cache: %w", err)
	}
	t.log.Debug("Latest posts cached",
		slog.Int64("generation", gen),
		slog.Int("limit", limit),
		slog.Int("count", len(posts)))
	return nil
}

func (t *TimelineCache) GetCount(ctx context.Context, gen int64) (int64, error) {
	var count int64
	if err := t.client.GetJSON(ctx, countKey(gen), &count); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return 0, custom_errors.ErrCacheMiss
		}
		return 0, fmt.Errorf("failed to get post count from cache: %w", err)
	}
	return count, nil
}

func (t *TimelineCache) SetCount(ctx context.Context, gen int64, count int64) error {
	if err := t.client.SetJSON(ctx, countKey(gen), count, t.ttl); err != nil {
		return fmt.Errorf("failed to set post count cache: %w", err)
	}
	return nil
}

func (t *TimelineCache) Invalidate(ctx context.Context) error {
	gen, err := t.client.Incr(ctx, generationKey)
	if err != nil {
		return fmt.Errorf("failed to invalidate timeline cache: %w", err)
	}
	t.log.Debug("Timeline cache invalidated", slog.Int64("generation", gen))
	return nil
}

func latestKey(gen int64, limit int) string {
	return latestKeyPrefix + strconv.FormatInt(gen, 10) + ":" + strconv.Itoa(limit)
}

func countKey(gen int64) string {
	return countKeyPrefix + strconv.FormatInt(gen, 10)
}
