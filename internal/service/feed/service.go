package feed_service

import (
	"context"
	"log/slog"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
	post_repository "eventsphere-api/internal/repository/post"
)

type FeedService struct {
	postRepo post_repository.Repository
	log      *logger.Logger
}

func NewFeedService(postRepo post_repository.Repository, log *logger.Logger) *FeedService {
	return &FeedService{postRepo: postRepo, log: log}
}

func (s *FeedService) SavePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	if post == nil || post.Email == "" || post.Message == "" {
		return nil, custom_errors.ErrInvalidInput
	}

	createdPost, err := s.postRepo.Create(ctx, post)
	if err != nil {
		s.log.Error("Failed to save post",
			slog.String("email", post.Email),
			slog.String("error", err.Error()))
		return nil, err
	}
	return createdPost, nil
}

func (s *FeedService) ListPosts(ctx context.Context) ([]*model.Post, int, error) {
	posts, total, err := s.postRepo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, 0, err
	}
	return posts, total, nil
}
