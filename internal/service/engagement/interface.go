package engagement_service

import (
	"context"

	"eventsphere-api/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/engagement --outpkg engagement_service_mock --filename Service.go
type Service interface {
	// ToggleLike flips the caller's like on a post. The returned bool is true
	// when the call liked the post, false when it unliked it.
	ToggleLike(ctx context.Context, postID int64, userID string) (*model.Post, bool, error)
}
