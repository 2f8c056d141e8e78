package post_repository

import (
	"context"

	"eventsphere-api/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg post_repository_mock --filename Repository.go
type Repository interface {
	Create(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context) ([]*model.Post, int, error)

	// AddLike applies "add member + increment counter" as a single conditional
	// update guarded by the user not being a member at write time. Returns
	// ErrAlreadyLiked when the guard does not hold.
	AddLike(ctx context.Context, id int64, userID string) (*model.Post, error)

	// RemoveLike applies "remove member + decrement counter" guarded by
	// current membership. Returns ErrNotLiked when the guard does not hold.
	RemoveLike(ctx context.Context, id int64, userID string) (*model.Post, error)
}
