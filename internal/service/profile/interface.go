package profile_service

import (
	"context"

	"eventsphere-api/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/profile --outpkg profile_service_mock --filename Service.go
type Service interface {
	UpdateProfile(ctx context.Context, email string, update *model.UpdateProfileDTO) (*model.User, error)
}
