package feed_service

import (
	"context"

	"eventsphere-api/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/feed --outpkg feed_service_mock --filename Service.go
type Service interface {
	SavePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	ListPosts(ctx context.Context) ([]*model.Post, int, error)
}
