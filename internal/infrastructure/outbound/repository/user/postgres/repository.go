package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"timeline-service/internal/custom_errors"
	model "timeline-service/internal/domain/models"
	ports "timeline-service/internal/domain/ports/output"
	"timeline-service/internal/infrastructure/outbound/repository/postgres/db"
)

type UserRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewUserRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: metrics}
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	start := time.Now()
	u.log.Debug("Getting user by username", slog.String("username", username))

	args := pgx.NamedArgs{"username": username}
	query := `SELECT id, username, created_at FROM users WHERE username = @username`

	user := &model.User{}
	err := u.db.QueryRow(ctx, query, args).Scan(&user.ID, &user.Username, &user.CreatedAt)
	u.metrics.RecordDatabaseQueryDuration("user_get_by_username", time.Since(start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.metrics.IncrementDatabaseQueries("user_get_by_username", true)
			u.log.Debug("User not found by username", slog.String("username", username))
			return nil, custom_errors.ErrUserNotFound
		}
		u.metrics.IncrementDatabaseQueries("user_get_by_username", false)
		u.log.Error("Error getting user by username", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.metrics.IncrementDatabaseQueries("user_get_by_username", true)
	return user, nil
}

func (u *UserRepository) Create(ctx context.Context, username string) (*model.User, error) {
	start := time.Now()
	u.log.Debug("Creating user", slog.String("username", username))

	args := pgx.NamedArgs{"username": username}
	query := `
		INSERT INTO users (username)
		VALUES (@username)
		RETURNING id, username, created_at`

	user := &model.User{}
	err := u.db.QueryRow(ctx, query, args).Scan(&user.ID, &user.Username, &user.CreatedAt)
	u.metrics.RecordDatabaseQueryDuration("user_create", time.Since(start))
	if err != nil {
		if db.IsUniqueViolation(err) {
			u.metrics.IncrementDatabaseQueries("user_create", false)
			u.log.Debug("User already exists", slog.String("username", username))
			return nil, custom_errors.ErrUserExists
		}
		u.metrics.IncrementDatabaseQueries("user_create", false)
		u.log.Error("Error creating user", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.metrics.IncrementDatabaseQueries("user_create", true)
	u.log.Debug("Successfully created user", slog.Int64("id", user.ID), slog.String("username", user.Username))
	return user, nil
}
