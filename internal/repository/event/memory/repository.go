package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
)

type EventRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	events map[int64]*model.Event
	nextID int64
}

func NewEventRepository(log *logger.Logger) *EventRepository {
	return &EventRepository{
		log:    log,
		events: make(map[int64]*model.Event),
		nextID: 1,
	}
}

func (e *EventRepository) Create(ctx context.Context, event *model.CreateEventDTO) (*model.Event, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	newEvent := &model.Event{
		ID:           e.nextID,
		Title:        event.Title,
		Description:  event.Description,
		Date:         event.Date,
		Time:         event.Time,
		LocationName: event.LocationName,
		IsPublic:     event.IsPublic,
		CreatedAt:    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	e.nextID++

	e.events[newEvent.ID] = newEvent

	result := *newEvent
	return &result, nil
}

func (e *EventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	event, exists := e.events[id]
	if !exists {
		e.log.Debug("Event not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrEventNotFound
	}

	result := *event
	return &result, nil
}

func (e *EventRepository) List(ctx context.Context) ([]*model.Event, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make([]*model.Event, 0, len(e.events))
	for _, event := range e.events {
		eventCopy := *event
		result = append(result, &eventCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Time.After(result[j].CreatedAt.Time)
	})

	return result, nil
}

func (e *EventRepository) Delete(ctx context.Context, id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.events[id]; !exists {
		return custom_errors.ErrEventNotFound
	}

	delete(e.events, id)
	return nil
}
