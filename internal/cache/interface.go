package cache

import (
	"context"

	"eventsphere-api/internal/model"
)

// FeedCache caches the post feed and individual posts. Implementations
// return custom_errors.ErrCacheMiss when a key is absent.
//
//go:generate mockery --name FeedCache --dir . --output ../../mocks/cache --outpkg cache_mock --filename FeedCache.go
type FeedCache interface {
	GetFeed(ctx context.Context) ([]*model.Post, int, error)
	SetFeed(ctx context.Context, posts []*model.Post, total int) error
	InvalidateFeed(ctx context.Context) error

	GetPost(ctx context.Context, id int64) (*model.Post, error)
	SetPost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id int64) error
}
