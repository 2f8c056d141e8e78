package user_repository

import (
	"context"

	"eventsphere-api/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/user --outpkg user_repository_mock --filename Repository.go
type Repository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Update replaces username, password hash and avatar reference for the
	// record keyed by user.Email. Plain read-modify-write: concurrent updates
	// for the same email are last-writer-wins.
	Update(ctx context.Context, user *model.User) (*model.User, error)
}
