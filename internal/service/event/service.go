package event_service

import (
	"context"
	"errors"
	"log/slog"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
	event_repository "eventsphere-api/internal/repository/event"
)

type EventService struct {
	eventRepo event_repository.Repository
	log       *logger.Logger
}

func NewEventService(eventRepo event_repository.Repository, log *logger.Logger) *EventService {
	return &EventService{eventRepo: eventRepo, log: log}
}

func (s *EventService) CreateEvent(ctx context.Context, event *model.CreateEventDTO) (*model.Event, error) {
	if event == nil || event.Title == "" {
		return nil, custom_errors.ErrInvalidInput
	}

	createdEvent, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		s.log.Error("Failed to create event", slog.String("error", err.Error()))
		return nil, err
	}
	return createdEvent, nil
}

func (s *EventService) GetEventByID(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrEventNotFound) {
			s.log.Debug("Event not found", slog.Int64("id", id))
			return nil, custom_errors.ErrEventNotFound
		}
		s.log.Error("Failed to get event", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, err
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]*model.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list events", slog.String("error", err.Error()))
		return nil, err
	}
	return events, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrEventNotFound) {
			s.log.Debug("Event not found for delete", slog.Int64("id", id))
			return custom_errors.ErrEventNotFound
		}
		s.log.Error("Failed to delete event", slog.Int64("id", id), slog.String("error", err.Error()))
		return err
	}
	return nil
}
