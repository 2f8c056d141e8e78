package engagement_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
	post_repository "eventsphere-api/internal/repository/post"
)

// maxToggleAttempts bounds the retry loop for the rare case where a
// concurrent toggle by the same user flips membership between the two
// guarded updates.
const maxToggleAttempts = 3

type LikeService struct {
	postRepo post_repository.Repository
	log      *logger.Logger
}

func NewLikeService(postRepo post_repository.Repository, log *logger.Logger) *LikeService {
	return &LikeService{postRepo: postRepo, log: log}
}

// ToggleLike chooses the transition by the persisted membership, never by a
// prior read: it attempts the remove-guarded update first, and only when the
// repository reports the guard did not hold attempts the add-guarded update.
// Both guards failing means the post is gone or the same user raced us.
func (s *LikeService) ToggleLike(ctx context.Context, postID int64, userID string) (*model.Post, bool, error) {
	if strings.TrimSpace(userID) == "" {
		s.log.Debug("Toggle like with empty user id", slog.Int64("post_id", postID))
		return nil, false, custom_errors.ErrInvalidInput
	}

	for attempt := 0; attempt < maxToggleAttempts; attempt++ {
		post, err := s.postRepo.RemoveLike(ctx, postID, userID)
		if err == nil {
			return post, false, nil
		}
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found for like toggle", slog.Int64("post_id", postID))
			return nil, false, custom_errors.ErrPostNotFound
		case errors.Is(err, custom_errors.ErrNotLiked):
			// Fall through to the add-guarded update.
		default:
			s.log.Error("Failed to remove like",
				slog.Int64("post_id", postID),
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
			return nil, false, err
		}

		post, err = s.postRepo.AddLike(ctx, postID, userID)
		if err == nil {
			return post, true, nil
		}
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found for like toggle", slog.Int64("post_id", postID))
			return nil, false, custom_errors.ErrPostNotFound
		case errors.Is(err, custom_errors.ErrAlreadyLiked):
			// Both guards failed in sequence.
		default:
			s.log.Error("Failed to add like",
				slog.Int64("post_id", postID),
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
			return nil, false, err
		}

		if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
			if errors.Is(err, custom_errors.ErrPostNotFound) {
				s.log.Debug("Post not found for like toggle", slog.Int64("post_id", postID))
			} else {
				s.log.Error("Failed to resolve like toggle conflict",
					slog.Int64("post_id", postID),
					slog.String("error", err.Error()))
			}
			return nil, false, err
		}

		s.log.Debug("Like toggle raced with a concurrent call, retrying",
			slog.Int64("post_id", postID),
			slog.String("user_id", userID))
	}

	s.log.Error("Like toggle did not settle",
		slog.Int64("post_id", postID),
		slog.String("user_id", userID))
	return nil, false, custom_errors.ErrLikeConflict
}
