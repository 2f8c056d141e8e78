package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
)

type UserRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	users  map[string]*model.User
	nextID int64
}

func NewUserRepository(log *logger.Logger) *UserRepository {
	return &UserRepository{
		log:    log,
		users:  make(map[string]*model.User),
		nextID: 1,
	}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.users[user.Email]; exists {
		u.log.Debug("Email already registered", slog.String("email", user.Email))
		return nil, custom_errors.ErrEmailAlreadyExists
	}

	newUser := &model.User{
		ID:           u.nextID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	u.nextID++

	u.users[newUser.Email] = newUser

	result := *newUser
	return &result, nil
}

func (u *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[email]
	if !exists {
		u.log.Debug("User not found by email", slog.String("email", email))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

func (u *UserRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	stored, exists := u.users[user.Email]
	if !exists {
		return nil, custom_errors.ErrUserNotFound
	}

	stored.Username = user.Username
	stored.PasswordHash = user.PasswordHash
	stored.AvatarRef = user.AvatarRef

	result := *stored
	return &result, nil
}
