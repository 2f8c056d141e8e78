package auth_service

import (
	"context"
	"errors"
	"log/slog"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/hasher"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
	user_repository "eventsphere-api/internal/repository/user"
)

type AuthService struct {
	userRepo user_repository.Repository
	hasher   hasher.PasswordHasher
	log      *logger.Logger
}

func NewAuthService(userRepo user_repository.Repository, passwordHasher hasher.PasswordHasher, log *logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   passwordHasher,
		log:      log,
	}
}

func (s *AuthService) Register(ctx context.Context, req *model.RegisterUserDTO) (*model.User, error) {
	if req == nil || req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, custom_errors.ErrInvalidInput
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password during registration",
			slog.String("email", req.Email),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrPasswordHashing
	}

	user, err := s.userRepo.Create(ctx, &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, custom_errors.ErrEmailAlreadyExists) {
			s.log.Debug("Registration with existing email", slog.String("email", req.Email))
			return nil, custom_errors.ErrEmailAlreadyExists
		}
		s.log.Error("Failed to create user",
			slog.String("email", req.Email),
			slog.String("error", err.Error()))
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, custom_errors.ErrInvalidInput
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Login for unknown email", slog.String("email", email))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to load user during login",
			slog.String("email", email),
			slog.String("error", err.Error()))
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Debug("Login with wrong password", slog.String("email", email))
		return nil, custom_errors.ErrInvalidCredentials
	}

	return user, nil
}
