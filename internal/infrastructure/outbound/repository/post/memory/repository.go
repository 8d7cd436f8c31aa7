package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	model "timeline-service/internal/domain/models"
	ports "timeline-service/internal/domain/ports/output"
)

type PostRepository struct {
	log    ports.Logger
	mu     sync.RWMutex
	posts  []*model.Post
	nextID int64
}

func NewPostRepository(log ports.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	newPost := &model.Post{
		ID:        p.nextID,
		UserID:    post.UserID,
		Username:  post.Username,
		Content:   post.Content,
		CreatedAt: time.Now().Truncate(time.Second),
	}
	p.nextID++
	p.posts = append(p.posts, newPost)

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetLatest(ctx context.Context, limit int) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := p.sorted(func(*model.Post) bool { return true })
	if limit >= 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (p *PostRepository) GetSince(ctx context.Context, lastID int64) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.sorted(func(post *model.Post) bool { return post.ID > lastID }), nil
}

func (p *PostRepository) Count(ctx context.Context) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return int64(len(p.posts)), nil
}

// sorted copies the matching posts, newest first. Callers hold the read lock.
func (p *PostRepository) sorted(keep func(*model.Post) bool) []*model.Post {
	result := make([]*model.Post, 0, len(p.posts))
	for _, post := range p.posts {
		if keep(post) {
			postCopy := *post
			result = append(result, &postCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result
}
