package post_repository_postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"timeline-service/internal/custom_errors"
	model "timeline-service/internal/domain/models"
	ports "timeline-service/internal/domain/ports/output"
	"timeline-service/internal/infrastructure/outbound/repository/postgres/db"
)

const postColumns = `id, user_id, username, content, created_at`

type PostRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewPostRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Creating new post", slog.Int64("user_id", post.UserID), slog.String("username", post.Username))

	args := pgx.NamedArgs{
		"user_id":  post.UserID,
		"username": post.Username,
		"content":  post.Content,
	}

	query := `
		INSERT INTO posts (user_id, username, content)
		VALUES (@user_id, @username, @content)
		RETURNING ` + postColumns

	var createdPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.UserID,
		&createdPost.Username,
		&createdPost.Content,
		&createdPost.CreatedAt,
	)

	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_create", false)
		p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_create", true)
	p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
	p.log.Debug("Successfully created post", slog.Int64("id", createdPost.ID), slog.Int64("user_id", createdPost.UserID))
	return &createdPost, nil
}

func (p *PostRepository) GetLatest(ctx context.Context, limit int) ([]*model.Post, error) {
	p.log.Debug("Getting latest posts", slog.Int("limit", limit))

	query := `SELECT ` + postColumns + `
				FROM posts ORDER BY created_at DESC, id DESC LIMIT @limit`
	return p.list(ctx, "post_get_latest", query, pgx.NamedArgs{"limit": limit})
}

func (p *PostRepository) GetSince(ctx context.Context, lastID int64) ([]*model.Post, error) {
	p.log.Debug("Getting posts since id", slog.Int64("last_id", lastID))

	query := `SELECT ` + postColumns + `
				FROM posts WHERE id > @last_id ORDER BY created_at DESC, id DESC`
	return p.list(ctx, "post_get_since", query, pgx.NamedArgs{"last_id": lastID})
}

func (p *PostRepository) Count(ctx context.Context) (int64, error) {
	start := time.Now()

	var count int64
	err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	p.metrics.RecordDatabaseQueryDuration("post_count", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_count", false)
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_count", true)
	return count, nil
}

func (p *PostRepository) list(ctx context.Context, queryType, query string, args pgx.NamedArgs) ([]*model.Post, error) {
	start := time.Now()

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries(queryType, false)
		p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
		p.log.Error("Error listing posts", slog.String("query_type", queryType), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Username,
			&post.Content,
			&post.CreatedAt,
		)
		if err != nil {
			p.metrics.IncrementDatabaseQueries(queryType, false)
			p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
			p.log.Error("Error scanning post", slog.String("query_type", queryType), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.metrics.IncrementDatabaseQueries(queryType, false)
		p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
		p.log.Error("Error iterating post rows", slog.String("query_type", queryType), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries(queryType, true)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
	p.log.Debug("Listed posts", slog.String("query_type", queryType), slog.Int("count", len(posts)))
	return posts, nil
}
