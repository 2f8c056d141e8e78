package auth_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
	hasher_mock "eventsphere-api/mocks/hasher"
	user_repository_mock "eventsphere-api/mocks/user"
)

func TestAuthService_Register(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()

	tests := []struct {
		name        string
		req         *model.RegisterUserDTO
		mocks       func(userRepo *user_repository_mock.Repository, passwordHasher *hasher_mock.PasswordHasher)
		wantErr     bool
		wantErrType error
	}{
		{
			name: "successful registration stores the hash, not the plaintext",
			req:  &model.RegisterUserDTO{Username: "alice", Email: "alice@b.c", Password: "secret"},
			mocks: func(userRepo *user_repository_mock.Repository, passwordHasher *hasher_mock.PasswordHasher) {
				passwordHasher.On("Hash", "secret").Return("hashed", nil)
				userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "alice@b.c" && u.PasswordHash == "hashed"
				})).Return(&model.User{ID: 1, Username: "alice", Email: "alice@b.c", PasswordHash: "hashed"}, nil)
			},
		},
		{
			name: "duplicate email",
			req:  &model.RegisterUserDTO{Username: "alice", Email: "alice@b.c", Password: "secret"},
			mocks: func(userRepo *user_repository_mock.Repository, passwordHasher *hasher_mock.PasswordHasher) {
				passwordHasher.On("Hash", "secret").Return("hashed", nil)
				userRepo.On("Create", mock.Anything, mock.Anything).
					Return(nil, custom_errors.ErrEmailAlreadyExists)
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrEmailAlreadyExists,
		},
		{
			name: "hashing failure",
			req:  &model.RegisterUserDTO{Username: "alice", Email: "alice@b.c", Password: "secret"},
			mocks: func(userRepo *user_repository_mock.Repository, passwordHasher *hasher_mock.PasswordHasher) {
				passwordHasher.On("Hash", "secret").Return("", assert.AnError)
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrPasswordHashing,
		},
		{
			name:        "missing fields",
			req:         &model.RegisterUserDTO{Username: "alice"},
			mocks:       func(userRepo *user_repository_mock.Repository, passwordHasher *hasher_mock.PasswordHasher) {},
			wantErr:     true,
			wantErrType: custom_errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := user_repository_mock.NewRepository(t)
			passwordHasher := hasher_mock.NewPasswordHasher(t)
			tt.mocks(userRepo, passwordHasher)

			service := NewAuthService(userRepo, passwordHasher, log)
			user, err := service.Register(ctx, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrType)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.req.Email, user.Email)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()

	stored := &model.User{ID: 1, Username: "alice", Email: "alice@b.c", PasswordHash: "hashed"}

	tests := []struct {
		name        string
		email       string
		password    string
		mocks       func(userRepo *user_repository_mock.Repository, passwordHasher *hasher_mock.PasswordHasher)
		wantErr     bool
		wantErrType error
	}{
		{
			name:     "successful login",
			email:    "alice@b.c",
			password: "secret",
			mocks: func(userRepo *user_repository_mock.Repository, passwordHasher *hasher_mock.PasswordHasher) {
				userRepo.On("GetByEmail", mock.Anything, "alice@b.c").Return(stored, nil)
				passwordHasher.On("Verify", "secret", "hashed").Return(true)
			},
		},
		{
			name:     "wrong password",
			email:    "alice@b.c",
			password: "wrong",
			mocks: func(userRepo *user_repository_mock.Repository, passwordHasher *hasher_mock.PasswordHasher) {
				userRepo.On("GetByEmail", mock.Anything, "alice@b.c").Return(stored, nil)
				passwordHasher.On("Verify", "wrong", "hashed").Return(false)
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "missing@b.c",
			password: "secret",
			mocks: func(userRepo *user_repository_mock.Repository, passwordHasher *hasher_mock.PasswordHasher) {
				userRepo.On("GetByEmail", mock.Anything, "missing@b.c").
					Return(nil, custom_errors.ErrUserNotFound)
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrUserNotFound,
		},
		{
			name:        "missing credentials",
			email:       "",
			password:    "",
			mocks:       func(userRepo *user_repository_mock.Repository, passwordHasher *hasher_mock.PasswordHasher) {},
			wantErr:     true,
			wantErrType: custom_errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := user_repository_mock.NewRepository(t)
			passwordHasher := hasher_mock.NewPasswordHasher(t)
			tt.mocks(userRepo, passwordHasher)

			service := NewAuthService(userRepo, passwordHasher, log)
			user, err := service.Login(ctx, tt.email, tt.password)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrType)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.email, user.Email)
		})
	}
}
