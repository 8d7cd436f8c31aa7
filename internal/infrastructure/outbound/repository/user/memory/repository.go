package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"timeline-service/internal/custom_errors"
	model "timeline-service/internal/domain/models"
	ports "timeline-service/internal/domain/ports/output"
)

type UserRepository struct {
	log    ports.Logger
	mu     sync.RWMutex
	users  map[string]*model.User
	nextID int64
}

func NewUserRepository(log ports.Logger) *UserRepository {
	return &UserRepository{
		log:    log,
		users:  make(map[string]*model.User),
		nextID: 1,
	}
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[username]
	if !exists {
		u.log.Debug("User not found by username", slog.String("username", username))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

func (u *UserRepository) Create(ctx context.Context, username string) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.users[username]; exists {
		return nil, custom_errors.ErrUserExists
	}

	user := &model.User{
		ID:        u.nextID,
		Username:  username,
		CreatedAt: time.Now().Truncate(time.Second),
	}
	u.nextID++
	u.users[username] = user

	result := *user
	return &result, nil
}
