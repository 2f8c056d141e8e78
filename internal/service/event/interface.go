package event_service

import (
	"context"

	"eventsphere-api/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/event_service --outpkg event_service_mock --filename Service.go
type Service interface {
	CreateEvent(ctx context.Context, event *model.CreateEventDTO) (*model.Event, error)
	GetEventByID(ctx context.Context, id int64) (*model.Event, error)
	ListEvents(ctx context.Context) ([]*model.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}
