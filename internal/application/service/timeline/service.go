package timeline_service

import (
	"context"
	"errors"
	"log/slog"

	"timeline-service/internal/custom_errors"
	model "timeline-service/internal/domain/models"
	ports "timeline-service/internal/domain/ports/output"
	post_repository "timeline-service/internal/domain/ports/output/post"
	user_repository "timeline-service/internal/domain/ports/output/user"
)

type TimelineService struct {
	userRepo user_repository.Repository
	postRepo post_repository.Repository
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewTimelineService(
	userRepo user_repository.Repository,
	postRepo post_repository.Repository,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *TimelineService {
	return &TimelineService{
		userRepo: userRepo,
		postRepo: postRepo,
		log:      log,
		metrics:  metrics,
	}
}

// GetOrCreateUser returns the user named username, creating it on first use.
// Losing an insert race to a concurrent caller is not an error: the row the
// other caller created is returned instead.
func (s *TimelineService) GetOrCreateUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		s.metrics.IncrementUserOperations("get_or_create", true)
		return user, nil
	}
	if !errors.Is(err, custom_errors.ErrUserNotFound) {
		s.metrics.IncrementUserOperations("get_or_create", false)
		s.log.Error("Failed to get user", slog.String("username", username), slog.String("error", err.Error()))
		return nil, err
	}

	user, err = s.userRepo.Create(ctx, username)
	if err == nil {
		s.metrics.IncrementUserOperations("get_or_create", true)
		s.log.Info("Created user", slog.Int64("user_id", user.ID), slog.String("username", user.Username))
		return user, nil
	}
	if !errors.Is(err, custom_errors.ErrUserExists) {
		s.metrics.IncrementUserOperations("get_or_create", false)
		s.log.Error("Failed to create user", slog.String("username", username), slog.String("error", err.Error()))
		return nil, err
	}

	s.log.Debug("User created concurrently, re-reading", slog.String("username", username))
	user, err = s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		s.metrics.IncrementUserOperations("get_or_create", false)
		s.log.Error("Failed to re-read concurrently created user", slog.String("username", username), slog.String("error", err.Error()))
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			return nil, custom_errors.ErrDatabaseQuery
		}
		return nil, err
	}

	s.metrics.IncrementUserOperations("get_or_create", true)
	return user, nil
}

func (s *TimelineService) AddPost(ctx context.Context, username, content string) (*model.Post, error) {
	author, err := s.GetOrCreateUser(ctx, username)
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	created, err := s.postRepo.Create(ctx, &model.Post{
		UserID:   author.ID,
		Username: author.Username,
		Content:  content,
	})
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		s.log.Error("Failed to create post", slog.Int64("user_id", author.ID), slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("create", true)
	s.log.Info("Post created", slog.Int64("post_id", created.ID), slog.String("username", created.Username))
	return created, nil
}

// GetLatestPosts returns up to limit posts, newest first. A non-positive
// limit falls back to model.DefaultTimelineLimit.
func (s *TimelineService) GetLatestPosts(ctx context.Context, limit int) ([]*model.Post, error) {
	if limit <= 0 {
		limit = model.DefaultTimelineLimit
	}

	posts, err := s.postRepo.GetLatest(ctx, limit)
	if err != nil {
		s.metrics.IncrementPostOperations("get_latest", false)
		s.log.Error("Failed to get latest posts", slog.Int("limit", limit), slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("get_latest", true)
	return posts, nil
}

func (s *TimelineService) GetNewPostsSince(ctx context.Context, lastID int64) ([]*model.Post, error) {
	posts, err := s.postRepo.GetSince(ctx, lastID)
	if err != nil {
		s.metrics.IncrementPostOperations("get_since", false)
		s.log.Error("Failed to get new posts", slog.Int64("last_id", lastID), slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("get_since", true)
	return posts, nil
}

func (s *TimelineService) GetPostCount(ctx context.Context) (int64, error) {
	count, err := s.postRepo.Count(ctx)
	if err != nil {
		s.metrics.IncrementPostOperations("count", false)
		s.log.Error("Failed to count posts", slog.String("error", err.Error()))
		return 0, err
	}

	s.metrics.IncrementPostOperations("count", true)
	return count, nil
}
