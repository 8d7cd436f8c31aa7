package user_repository

import (
	"context"

	model "timeline-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/user --outpkg mocks --filename Repository.go
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, username string) (*model.User, error)
}
