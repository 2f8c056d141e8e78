package auth_service

import (
	"context"

	"eventsphere-api/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/auth --outpkg auth_service_mock --filename Service.go
type Service interface {
	Register(ctx context.Context, req *model.RegisterUserDTO) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}
