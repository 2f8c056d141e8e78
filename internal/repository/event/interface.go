package event_repository

import (
	"context"

	"eventsphere-api/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/event --outpkg event_repository_mock --filename Repository.go
type Repository interface {
	Create(ctx context.Context, event *model.CreateEventDTO) (*model.Event, error)
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	Delete(ctx context.Context, id int64) error
}
