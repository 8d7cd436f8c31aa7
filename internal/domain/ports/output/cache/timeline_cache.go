package cache

import (
	"context"

	model "timeline-service/internal/domain/models"
)

// TimelineCache entries are scoped to a generation. Invalidate advances the
// generation, so a refill computed before a write lands under a key that is
// never read again.
//
//go:generate mockery --name TimelineCache --dir . --output ../../../../../mocks/cache --outpkg mocks --filename TimelineCache.go
type TimelineCache interface {
	Generation(ctx context.Context) (int64, error)
	GetLatest(ctx context.Context, gen int64, limit int) ([]*model.Post, error)
	SetLatest(ctx context.Context, gen int64, limit int, posts []*model.Post) error
	GetCount(ctx context.Context, gen int64) (int64, error)
	SetCount(ctx context.Context, gen int64, count int64) error
	Invalidate(ctx context.Context) error
}
