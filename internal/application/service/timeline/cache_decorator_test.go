package timeline_service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"timeline-service/internal/custom_errors"
	model "timeline-service/internal/domain/models"
	"timeline-service/internal/infrastructure/logger"
	"timeline-service/internal/infrastructure/outbound/metrics/prometheus"
	cache_mock "timeline-service/mocks/cache"
	timeline_service_mock "timeline-service/mocks/timeline"
)

func TestTimelineServiceCacheDecorator_GetLatestPosts(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()
	posts := []*model.Post{{ID: 2, Content: "b"}, {ID: 1, Content: "a"}}

	tests := []struct {
		name        string
		limit       int
		mocks       func(svc *timeline_service_mock.Service, c *cache_mock.TimelineCache)
		want        []*model.Post
		wantErrType error
	}{
		{
			name:  "Cache hit skips the service",
			limit: 10,
			mocks: func(svc *timeline_service_mock.Service, c *cache_mock.TimelineCache) {
				c.On("Generation", mock.Anything).Return(int64(3), nil)
				c.On("GetLatest", mock.Anything, int64(3), 10).Return(posts, nil)
			},
			want: posts,
		},
		{
			name:  "Cache miss loads and stores under the same generation",
			limit: 0,
			mocks: func(svc *timeline_service_mock.Service, c *cache_mock.TimelineCache) {
				c.On("Generation", mock.Anything).Return(int64(3), nil)
				c.On("GetLatest", mock.Anything, int64(3), model.DefaultTimelineLimit).Return(nil, custom_errors.ErrCacheMiss)
				svc.On("GetLatestPosts", mock.Anything, model.DefaultTimelineLimit).Return(posts, nil)
				c.On("SetLatest", mock.Anything, int64(3), model.DefaultTimelineLimit, posts).Return(nil)
			},
			want: posts,
		},
		{
			name:  "Cache failures do not fail the read",
			limit: 5,
			mocks: func(svc *timeline_service_mock.Service, c *cache_mock.TimelineCache) {
				c.On("Generation", mock.Anything).Return(int64(0), nil)
				c.On("GetLatest", mock.Anything, int64(0), 5).Return(nil, errors.New("connection refused"))
				svc.On("GetLatestPosts", mock.Anything, 5).Return(posts, nil)
				c.On("SetLatest", mock.Anything, int64(0), 5, posts).Return(errors.New("connection refused"))
			},
			want: posts,
		},
		{
			name:  "Unreadable generation bypasses the cache",
			limit: 5,
			mocks: func(svc *timeline_service_mock.Service, c *cache_mock.TimelineCache) {
				c.On("Generation", mock.Anything).Return(int64(0), errors.New("connection refused"))
				svc.On("GetLatestPosts", mock.Anything, 5).Return(posts, nil)
			},
			want: posts,
		},
		{
			name:  "Service error is not cached",
			limit: 5,
			mocks: func(svc *timeline_service_mock.Service, c *cache_mock.TimelineCache) {
				c.On("Generation", mock.Anything).Return(int64(1), nil)
				c.On("GetLatest", mock.Anything, int64(1), 5).Return(nil, custom_errors.ErrCacheMiss)
				svc.On("GetLatestPosts", mock.Anything, 5).Return(nil, custom_errors.ErrDatabaseQuery)
			},
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := timeline_service_mock.NewService(t)
			c := cache_mock.NewTimelineCache(t)
			tt.mocks(svc, c)

			decorator := NewTimelineServiceCacheDecorator(svc, c, log, metrics)
			got, err := decorator.GetLatestPosts(context.Background(), tt.limit)

			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimelineServiceCacheDecorator_GetPostCount(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()

	t.Run("Cache hit", func(t *testing.T) {
		svc := timeline_service_mock.NewService(t)
		c := cache_mock.NewTimelineCache(t)
		c.On("Generation", mock.Anything).Return(int64(2), nil)
		c.On("GetCount", mock.Anything, int64(2)).Return(int64(4), nil)

		count, err := NewTimelineServiceCacheDecorator(svc, c, log, metrics).GetPostCount(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("Cache miss", func(t *testing.T) {
		svc := timeline_service_mock.NewService(t)
		c := cache_mock.NewTimelineCache(t)
		c.On("Generation", mock.Anything).Return(int64(2), nil)
		c.On("GetCount", mock.Anything, int64(2)).Return(int64(0), custom_errors.ErrCacheMiss)
		svc.On("GetPostCount", mock.Anything).Return(int64(9), nil)
		c.On("SetCount", mock.Anything, int64(2), int64(9)).Return(nil)

		count, err := NewTimelineServiceCacheDecorator(svc, c, log, metrics).GetPostCount(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(9), count)
	})

	t.Run("Unreadable generation bypasses the cache", func(t *testing.T) {
		svc := timeline_service_mock.NewService(t)
		c := cache_mock.NewTimelineCache(t)
		c.On("Generation", mock.Anything).Return(int64(0), errors.New("connection refused"))
		svc.On("GetPostCount", mock.Anything).Return(int64(9), nil)

		count, err := NewTimelineServiceCacheDecorator(svc, c, log, metrics).GetPostCount(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(9), count)
	})

	t.Run("Service error", func(t *testing.T) {
		svc := timeline_service_mock.NewService(t)
		c := cache_mock.NewTimelineCache(t)
		c.On("Generation", mock.Anything).Return(int64(2), nil)
		c.On("GetCount", mock.Anything, int64(2)).Return(int64(0), custom_errors.ErrCacheMiss)
		svc.On("GetPostCount", mock.Anything).Return(int64(0), custom_errors.ErrDatabaseQuery)

		_, err := NewTimelineServiceCacheDecorator(svc, c, log, metrics).GetPostCount(context.Background())
		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	})
}

func TestTimelineServiceCacheDecorator_AddPost(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()
	created := &model.Post{ID: 11, UserID: 1, Username: "alice", Content: "hi"}

	t.Run("Invalidates after a write", func(t *testing.T) {
		svc := timeline_service_mock.NewService(t)
		c := cache_mock.NewTimelineCache(t)
		svc.On("AddPost", mock.Anything, "alice", "hi").Return(created, nil)
		c.On("Invalidate", mock.Anything).Return(nil).Once()

		got, err := NewTimelineServiceCacheDecorator(svc, c, log, metrics).AddPost(context.Background(), "alice", "hi")
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("Invalidation failure keeps the post", func(t *testing.T) {
		svc := timeline_service_mock.NewService(t)
		c := cache_mock.NewTimelineCache(t)
		svc.On("AddPost", mock.Anything, "alice", "hi").Return(created, nil)
		c.On("Invalidate", mock.Anything).Return(errors.New("connection refused"))

		got, err := NewTimelineServiceCacheDecorator(svc, c, log, metrics).AddPost(context.Background(), "alice", "hi")
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("Failed write leaves the cache alone", func(t *testing.T) {
		svc := timeline_service_mock.NewService(t)
		c := cache_mock.NewTimelineCache(t)
		svc.On("AddPost", mock.Anything, "alice", "hi").Return(nil, custom_errors.ErrDatabaseQuery)

		_, err := NewTimelineServiceCacheDecorator(svc, c, log, metrics).AddPost(context.Background(), "alice", "hi")
		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	})
}

// generationCache is an in-process TimelineCache keyed the same way as the
// redis one: entries belong to the generation they were written under.
type generationCache struct {
	mu     sync.Mutex
	gen    int64
	latest map[int64][]*model.Post
	counts map[int64]int64
}

func newGenerationCache() *generationCache {
	return &generationCache{
		latest: make(map[int64][]*model.Post),
		counts: make(map[int64]int64),
	}
}

func (g *generationCache) Generation(ctx context.Context) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen, nil
}

func (g *generationCache) GetLatest(ctx context.Context, gen int64, limit int) ([]*model.Post, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	posts, ok := g.latest[gen]
	if !ok {
		return nil, custom_errors.ErrCacheMiss
	}
	return posts, nil
}

func (g *generationCache) SetLatest(ctx context.Context, gen int64, limit int, posts []*model.Post) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.latest[gen] = posts
	return nil
}

func (g *generationCache) GetCount(ctx context.Context, gen int64) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	count, ok := g.counts[gen]
	if !ok {
		return 0, custom_errors.ErrCacheMiss
	}
	return count, nil
}

func (g *generationCache) SetCount(ctx context.Context, gen int64, count int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counts[gen] = count
	return nil
}

func (g *generationCache) Invalidate(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	return nil
}

func TestTimelineServiceCacheDecorator_RefillRacingAWriteIsNotServed(t *testing.T) {
	ctx := context.Background()
	svc := timeline_service_mock.NewService(t)
	decorator := NewTimelineServiceCacheDecorator(svc, newGenerationCache(), logger.New("test"), prometheus.NewPrometheusMetricsProvider())

	before := []*model.Post{{ID: 1, Content: "first"}}
	after := []*model.Post{{ID: 2, Content: "second"}, {ID: 1, Content: "first"}}
	created := &model.Post{ID: 2, Content: "second"}

	svc.On("AddPost", mock.Anything, "bob", "second").Return(created, nil).Once()
	// The first store read completes only after a writer has posted and
	// invalidated the cache.
	svc.On("GetLatestPosts", mock.Anything, 10).
		Run(func(args mock.Arguments) {
			_, err := decorator.AddPost(ctx, "bob", "second")
			require.NoError(t, err)
		}).
		Return(before, nil).Once()
	svc.On("GetLatestPosts", mock.Anything, 10).Return(after, nil).Once()

	stale, err := decorator.GetLatestPosts(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, before, stale)

	fresh, err := decorator.GetLatestPosts(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, after, fresh)

	cached, err := decorator.GetLatestPosts(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, after, cached)
	svc.AssertNumberOfCalls(t, "GetLatestPosts", 2)
}

func TestTimelineServiceCacheDecorator_CountRacingAWriteIsNotServed(t *testing.T) {
	ctx := context.Background()
	svc := timeline_service_mock.NewService(t)
	decorator := NewTimelineServiceCacheDecorator(svc, newGenerationCache(), logger.New("test"), prometheus.NewPrometheusMetricsProvider())

	svc.On("AddPost", mock.Anything, "bob", "second").Return(&model.Post{ID: 2}, nil).Once()
	svc.On("GetPostCount", mock.Anything).
		Run(func(args mock.Arguments) {
			_, err := decorator.AddPost(ctx, "bob", "second")
			require.NoError(t, err)
		}).
		Return(int64(1), nil).Once()
	svc.On("GetPostCount", mock.Anything).Return(int64(2), nil).Once()

	stale, err := decorator.GetPostCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stale)

	fresh, err := decorator.GetPostCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fresh)
}

func TestTimelineServiceCacheDecorator_PassThrough(t *testing.T) {
	svc := timeline_service_mock.NewService(t)
	c := cache_mock.NewTimelineCache(t)
	user := &model.User{ID: 1, Username: "alice"}
	svc.On("GetOrCreateUser", mock.Anything, "alice").Return(user, nil)
	svc.On("GetNewPostsSince", mock.Anything, int64(3)).Return([]*model.Post{{ID: 4}}, nil)

	decorator := NewTimelineServiceCacheDecorator(svc, c, logger.New("test"), prometheus.NewPrometheusMetricsProvider())

	got, err := decorator.GetOrCreateUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	posts, err := decorator.GetNewPostsSince(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}
