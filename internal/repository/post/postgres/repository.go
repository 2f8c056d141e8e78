package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/metrics"
	"eventsphere-api/internal/model"
	"eventsphere-api/internal/repository/postgres/db"
)

type PostRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.MetricsProvider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, metricsProvider metrics.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metricsProvider}
}

const postColumns = `id, email, message, like_count, like_users, created_at`

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.Email,
		&post.Message,
		&post.Likes.Count,
		&post.Likes.Users,
		&post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if post.Likes.Users == nil {
		post.Likes.Users = []string{}
	}
	return post, nil
}

func (p *PostRepository) recordQuery(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func (p *PostRepository) Create(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	start := time.Now()
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"email":      post.Email,
		"message":    post.Message,
		"created_at": now,
	}

	query := `
		INSERT INTO posts (email, message, created_at)
		VALUES (@email, @message, @created_at)
		RETURNING ` + postColumns

	createdPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.recordQuery("post_create", start, false)
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.recordQuery("post_create", start, true)
	return createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id`

	post, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.recordQuery("post_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.recordQuery("post_get_by_id", start, true)
	return post, nil
}

func (p *PostRepository) List(ctx context.Context) ([]*model.Post, int, error) {
	start := time.Now()
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		p.recordQuery("post_list", start, false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.recordQuery("post_list", start, false)
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, 0, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		p.recordQuery("post_list", start, false)
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	p.recordQuery("post_list", start, true)
	return posts, len(posts), nil
}

// AddLike is a single conditional update: the membership guard is evaluated
// by Postgres at write time, so two concurrent calls for the same user
// cannot both apply.
func (p *PostRepository) AddLike(ctx context.Context, id int64, userID string) (*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id, "user_id": userID}
	query := `
		UPDATE posts
		SET like_count = like_count + 1,
		    like_users = array_append(like_users, @user_id)
		WHERE id = @id AND NOT (@user_id = ANY (like_users))
		RETURNING ` + postColumns

	post, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.recordQuery("post_add_like", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Add-like guard did not hold",
				slog.Int64("id", id),
				slog.String("user_id", userID))
			return nil, custom_errors.ErrAlreadyLiked
		}
		p.log.Error("Error adding like",
			slog.Int64("id", id),
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.recordQuery("post_add_like", start, true)
	return post, nil
}

// RemoveLike mirrors AddLike. GREATEST floors the counter at zero even if a
// logic error ever desynchronized it from the membership set.
func (p *PostRepository) RemoveLike(ctx context.Context, id int64, userID string) (*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id, "user_id": userID}
	query := `
		UPDATE posts
		SET like_count = GREATEST(like_count - 1, 0),
		    like_users = array_remove(like_users, @user_id)
		WHERE id = @id AND @user_id = ANY (like_users)
		RETURNING ` + postColumns

	post, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.recordQuery("post_remove_like", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Remove-like guard did not hold",
				slog.Int64("id", id),
				slog.String("user_id", userID))
			return nil, custom_errors.ErrNotLiked
		}
		p.log.Error("Error removing like",
			slog.Int64("id", id),
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.recordQuery("post_remove_like", start, true)
	return post, nil
}
