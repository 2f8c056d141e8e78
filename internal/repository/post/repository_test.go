package post_repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
	post_repository "eventsphere-api/internal/repository/post"
	"eventsphere-api/internal/repository/post/memory"
)

func setupPostTest(t *testing.T) post_repository.Repository {
	log := logger.New("test")
	return memory.NewPostRepository(log)
}

func TestPostRepository_Create(t *testing.T) {
	repo := setupPostTest(t)

	got, err := repo.Create(context.Background(), &model.CreatePostDTO{
		Email:   "a@b.c",
		Message: "Test message",
	})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a@b.c", got.Email)
	assert.Equal(t, "Test message", got.Message)
	assert.Equal(t, int32(0), got.Likes.Count)
	assert.Empty(t, got.Likes.Users)
	assert.True(t, got.CreatedAt.Valid)
}

func TestPostRepository_GetByID(t *testing.T) {
	repo := setupPostTest(t)

	created, err := repo.Create(context.Background(), &model.CreatePostDTO{
		Email:   "a@b.c",
		Message: "Test message",
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      int64
		wantErr error
	}{
		{
			name: "existing post",
			id:   created.ID,
		},
		{
			name:    "missing post",
			id:      9999,
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByID(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, created.ID, got.ID)
			}
		})
	}
}

func TestPostRepository_AddLike(t *testing.T) {
	repo := setupPostTest(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.CreatePostDTO{Email: "a@b.c", Message: "m"})
	require.NoError(t, err)

	got, err := repo.AddLike(ctx, created.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), got.Likes.Count)
	assert.Equal(t, []string{"u1"}, got.Likes.Users)

	// Second add by the same user fails the membership guard.
	got, err = repo.AddLike(ctx, created.ID, "u1")
	assert.ErrorIs(t, err, custom_errors.ErrAlreadyLiked)
	assert.Nil(t, got)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), stored.Likes.Count)

	_, err = repo.AddLike(ctx, 9999, "u1")
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func TestPostRepository_RemoveLike(t *testing.T) {
	repo := setupPostTest(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.CreatePostDTO{Email: "a@b.c", Message: "m"})
	require.NoError(t, err)

	// Remove before any like fails the guard and leaves the counter at zero.
	got, err := repo.RemoveLike(ctx, created.ID, "u1")
	assert.ErrorIs(t, err, custom_errors.ErrNotLiked)
	assert.Nil(t, got)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(0), stored.Likes.Count)

	_, err = repo.AddLike(ctx, created.ID, "u1")
	require.NoError(t, err)

	got, err = repo.RemoveLike(ctx, created.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, int32(0), got.Likes.Count)
	assert.Empty(t, got.Likes.Users)

	_, err = repo.RemoveLike(ctx, 9999, "u1")
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func TestPostRepository_List(t *testing.T) {
	repo := setupPostTest(t)
	ctx := context.Background()

	posts, total, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, 0, total)

	_, err = repo.Create(ctx, &model.CreatePostDTO{Email: "a@b.c", Message: "first"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.CreatePostDTO{Email: "a@b.c", Message: "second"})
	require.NoError(t, err)

	posts, total, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, posts, 2)
}
