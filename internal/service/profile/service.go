package profile_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/hasher"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
	user_repository "eventsphere-api/internal/repository/user"
	"eventsphere-api/internal/storage"
)

type ProfileService struct {
	userRepo user_repository.Repository
	files    storage.FileStorage
	hasher   hasher.PasswordHasher
	log      *logger.Logger
	now      func() time.Time
}

func NewProfileService(
	userRepo user_repository.Repository,
	files storage.FileStorage,
	passwordHasher hasher.PasswordHasher,
	log *logger.Logger,
) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		files:    files,
		hasher:   passwordHasher,
		log:      log,
		now:      time.Now,
	}
}

// UpdateProfile applies avatar replacement, username change and conditional
// credential rotation, in that order. The user record write is a plain
// read-modify-write: concurrent updates for the same email are
// last-writer-wins, which is accepted for this operation. File store and
// user record are not updated transactionally; a crash between the two can
// leave an orphaned file for an external sweep to collect.
func (s *ProfileService) UpdateProfile(ctx context.Context, email string, update *model.UpdateProfileDTO) (*model.User, error) {
	if email == "" || update == nil || update.Username == "" || update.Password == "" {
		s.log.Debug("Profile update with missing required fields", slog.String("email", email))
		return nil, custom_errors.ErrInvalidInput
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("User not found for profile update", slog.String("email", email))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to load user for profile update",
			slog.String("email", email),
			slog.String("error", err.Error()))
		return nil, err
	}

	if update.Avatar != nil {
		newRef := s.storedFileName(update.Avatar.FileName)
		if err := s.files.Save(ctx, newRef, update.Avatar.Content); err != nil {
			s.log.Error("Failed to store new avatar",
				slog.String("email", email),
				slog.String("file", newRef),
				slog.String("error", err.Error()))
			return nil, custom_errors.ErrFileStorage
		}

		if user.AvatarRef != nil {
			// Best-effort: a leftover old file is an orphan for the cleanup
			// sweep, never a failed profile update.
			if err := s.files.Delete(ctx, *user.AvatarRef); err != nil {
				s.log.Warn("Failed to delete old avatar",
					slog.String("email", email),
					slog.String("file", *user.AvatarRef),
					slog.String("error", err.Error()))
			}
		}

		// Recorded whenever a new file was supplied, whether or not an old
		// one existed.
		user.AvatarRef = &newRef
	}

	user.Username = update.Username

	// The stored form is a one-way hash, so "did the password change" can
	// only be answered by verifying the submitted plaintext against it.
	if !s.hasher.Verify(update.Password, user.PasswordHash) {
		newHash, err := s.hasher.Hash(update.Password)
		if err != nil {
			s.log.Error("Failed to hash new password",
				slog.String("email", email),
				slog.String("error", err.Error()))
			return nil, custom_errors.ErrPasswordHashing
		}
		user.PasswordHash = newHash
	}

	updatedUser, err := s.userRepo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("User disappeared during profile update", slog.String("email", email))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to persist profile update",
			slog.String("email", email),
			slog.String("error", err.Error()))
		return nil, err
	}

	return updatedUser, nil
}

func (s *ProfileService) storedFileName(original string) string {
	return fmt.Sprintf("%d-%s", s.now().UnixNano(), filepath.Base(original))
}
