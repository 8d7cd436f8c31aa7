package post_repository

import (
	"context"

	model "timeline-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/post --outpkg mocks --filename Repository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetLatest(ctx context.Context, limit int) ([]*model.Post, error)
	GetSince(ctx context.Context, lastID int64) ([]*model.Post, error)
	Count(ctx context.Context) (int64, error)
}
