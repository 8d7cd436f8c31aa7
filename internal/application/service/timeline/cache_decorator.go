package timeline_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"timeline-service/internal/custom_errors"
	model "timeline-service/internal/domain/models"
	timeline_service "timeline-service/internal/domain/ports/input/timeline"
	output "timeline-service/internal/domain/ports/output"
	"timeline-service/internal/domain/ports/output/cache"
)

// TimelineServiceCacheDecorator serves the latest-posts page and the post
// count from cache. Polling by id always goes to the store.
type TimelineServiceCacheDecorator struct {
	service       timeline_service.Service
	timelineCache cache.TimelineCache
	log           output.Logger
	metrics       output.MetricsProvider
}

func NewTimelineServiceCacheDecorator(
	service timeline_service.Service,
	timelineCache cache.TimelineCache,
	log output.Logger,
	metrics output.MetricsProvider,
) timeline_service.Service {
	return &TimelineServiceCacheDecorator{
		service:       service,
		timelineCache: timelineCache,
		log:           log,
		metrics:       metrics,
	}
}

func (d *TimelineServiceCacheDecorator) GetOrCreateUser(ctx context.Context, username string) (*model.User, error) {
	return d.service.GetOrCreateUser(ctx, username)
}

func (d *TimelineServiceCacheDecorator) AddPost(ctx context.Context, username, content string) (*model.Post, error) {
	post, err := d.service.AddPost(ctx, username, content)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := d.timelineCache.Invalidate(ctx); err != nil {
		d.log.Warn("Failed to invalidate timeline cache after post creation",
			slog.Int64("post_id", post.ID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("timeline_invalidate", time.Since(start))

	return post, nil
}

// GetLatestPosts refills under the generation read before the store query,
// so a page loaded across a concurrent AddPost is never served.
func (d *TimelineServiceCacheDecorator) GetLatestPosts(ctx context.Context, limit int) ([]*model.Post, error) {
	if limit <= 0 {
		limit = model.DefaultTimelineLimit
	}

	gen, err := d.timelineCache.Generation(ctx)
	if err != nil {
		d.log.Warn("Failed to read timeline cache generation", slog.String("error", err.Error()))
		return d.service.GetLatestPosts(ctx, limit)
	}

	cacheStart := time.Now()
	cached, err := d.timelineCache.GetLatest(ctx, gen, limit)
	d.metrics.RecordCacheOperationDuration("timeline_latest_get", time.Since(cacheStart))
	if err == nil {
		d.log.Debug("Latest posts found in cache", slog.Int64("generation", gen), slog.Int("limit", limit))
		d.metrics.IncrementCacheHits()
		return cached, nil
	}

	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get latest posts from cache", slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	posts, err := d.service.GetLatestPosts(ctx, limit)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.timelineCache.SetLatest(ctx, gen, limit, posts); err != nil {
		d.log.Warn("Failed to cache latest posts", slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("timeline_latest_set", time.Since(setStart))

	return posts, nil
}

func (d *TimelineServiceCacheDecorator) GetNewPostsSince(ctx context.Context, lastID int64) ([]*model.Post, error) {
	return d.service.GetNewPostsSince(ctx, lastID)
}

func (d *TimelineServiceCacheDecorator) GetPostCount(ctx context.Context) (int64, error) {
	gen, err := d.timelineCache.Generation(ctx)
	if err != nil {
		d.log.Warn("Failed to read timeline cache generation", slog.String("error", err.Error()))
		return d.service.GetPostCount(ctx)
	}

	cacheStart := time.Now()
	cached, err := d.timelineCache.GetCount(ctx, gen)
	d.metrics.RecordCacheOperationDuration("timeline_count_get", time.Since(cacheStart))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return cached, nil
	}

	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get post count from cache", slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	count, err := d.service.GetPostCount(ctx)
	if err != nil {
		return 0, err
	}

	setStart := time.Now()
	if err := d.timelineCache.SetCount(ctx, gen, count); err != nil {
		d.log.Warn("Failed to cache post count", slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("timeline_count_set", time.Since(setStart))

	return count, nil
}
