package event_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/metrics"
	"eventsphere-api/internal/model"
	"eventsphere-api/internal/repository/postgres/db"
)

type EventRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.MetricsProvider
}

func NewEventRepository(db db.PgDB, log *logger.Logger, metricsProvider metrics.MetricsProvider) *EventRepository {
	return &EventRepository{db: db, log: log, metrics: metricsProvider}
}

func (e *EventRepository) recordQuery(queryType string, start time.Time, success bool) {
	e.metrics.IncrementDatabaseQueries(queryType, success)
	e.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

const eventColumns = `id, title, description, date, time, location_name, is_public, created_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	event := &model.Event{}
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Time,
		&event.LocationName,
		&event.IsPublic,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (e *EventRepository) Create(ctx context.Context, event *model.CreateEventDTO) (*model.Event, error) {
	start := time.Now()
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"title":         event.Title,
		"description":   event.Description,
		"date":          event.Date,
		"time":          event.Time,
		"location_name": event.LocationName,
		"is_public":     event.IsPublic,
		"created_at":    now,
	}

	query := `
		INSERT INTO events (title, description, date, time, location_name, is_public, created_at)
		VALUES (@title, @description, @date, @time, @location_name, @is_public, @created_at)
		RETURNING ` + eventColumns

	createdEvent, err := scanEvent(e.db.QueryRow(ctx, query, args))
	if err != nil {
		e.recordQuery("event_create", start, false)
		e.log.Error("Error creating event", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	e.recordQuery("event_create", start, true)
	return createdEvent, nil
}

func (e *EventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = @id`

	event, err := scanEvent(e.db.QueryRow(ctx, query, args))
	if err != nil {
		e.recordQuery("event_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			e.log.Debug("Event not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrEventNotFound
		}
		e.log.Error("Error getting event by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	e.recordQuery("event_get_by_id", start, true)
	return event, nil
}

func (e *EventRepository) List(ctx context.Context) ([]*model.Event, error) {
	start := time.Now()
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC`

	rows, err := e.db.Query(ctx, query)
	if err != nil {
		e.recordQuery("event_list", start, false)
		e.log.Error("Error listing events", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var events []*model.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			e.recordQuery("event_list", start, false)
			e.log.Error("Error scanning event during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		e.recordQuery("event_list", start, false)
		e.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	e.recordQuery("event_list", start, true)
	return events, nil
}

func (e *EventRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM events WHERE id = @id`

	result, err := e.db.Exec(ctx, query, args)
	if err != nil {
		e.recordQuery("event_delete", start, false)
		e.log.Error("Error deleting event", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		e.recordQuery("event_delete", start, false)
		return custom_errors.ErrEventNotFound
	}

	e.recordQuery("event_delete", start, true)
	return nil
}
