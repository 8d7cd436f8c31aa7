package timeline_service

import (
	"context"

	model "timeline-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/timeline --outpkg mocks --filename Service.go
type Service interface {
	GetOrCreateUser(ctx context.Context, username string) (*model.User, error)
	AddPost(ctx context.Context, username, content string) (*model.Post, error)
	GetLatestPosts(ctx context.Context, limit int) ([]*model.Post, error)
	GetNewPostsSince(ctx context.Context, lastID int64) ([]*model.Post, error)
	GetPostCount(ctx context.Context) (int64, error)
}
