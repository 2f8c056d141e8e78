package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/metrics"
	"eventsphere-api/internal/model"
	"eventsphere-api/internal/repository/postgres/db"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.MetricsProvider
}

func NewUserRepository(db db.PgDB, log *logger.Logger, metricsProvider metrics.MetricsProvider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: metricsProvider}
}

func (u *UserRepository) recordQuery(queryType string, start time.Time, success bool) {
	u.metrics.IncrementDatabaseQueries(queryType, success)
	u.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

const userColumns = `id, username, email, password_hash, avatar_ref, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.AvatarRef,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"username":      user.Username,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"created_at":    now,
	}

	query := `
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES (@username, @email, @password_hash, @created_at)
		RETURNING ` + userColumns

	createdUser, err := scanUser(u.db.QueryRow(ctx, query, args))
	if err != nil {
		u.recordQuery("user_create", start, false)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			u.log.Debug("Email already registered", slog.String("email", user.Email))
			return nil, custom_errors.ErrEmailAlreadyExists
		}
		u.log.Error("Error creating user", slog.String("email", user.Email), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.recordQuery("user_create", start, true)
	return createdUser, nil
}

func (u *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	start := time.Now()
	args := pgx.NamedArgs{"email": email}
	query := `SELECT ` + userColumns + ` FROM users WHERE email = @email`

	user, err := scanUser(u.db.QueryRow(ctx, query, args))
	if err != nil {
		u.recordQuery("user_get_by_email", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by email", slog.String("email", email))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by email", slog.String("email", email), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.recordQuery("user_get_by_email", start, true)
	return user, nil
}

func (u *UserRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	args := pgx.NamedArgs{
		"email":         user.Email,
		"username":      user.Username,
		"password_hash": user.PasswordHash,
		"avatar_ref":    user.AvatarRef,
	}

	query := `
		UPDATE users
		SET username = @username, password_hash = @password_hash, avatar_ref = @avatar_ref
		WHERE email = @email
		RETURNING ` + userColumns

	updatedUser, err := scanUser(u.db.QueryRow(ctx, query, args))
	if err != nil {
		u.recordQuery("user_update", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found during Update", slog.String("email", user.Email))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error updating user", slog.String("email", user.Email), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.recordQuery("user_update", start, true)
	return updatedUser, nil
}
