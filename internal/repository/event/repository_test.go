package event_repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
	event_repository "eventsphere-api/internal/repository/event"
	"eventsphere-api/internal/repository/event/memory"
)

func setupEventTest(t *testing.T) event_repository.Repository {
	log := logger.New("test")
	return memory.NewEventRepository(log)
}

func TestEventRepository_CreateAndGet(t *testing.T) {
	repo := setupEventTest(t)
	ctx := context.Background()

	description := "A small get-together"
	created, err := repo.Create(ctx, &model.CreateEventDTO{
		Title:       "Meetup",
		Description: &description,
		Date:        "2026-09-01",
		Time:        "18:00",
		IsPublic:    true,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Meetup", created.Title)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.Description)
	assert.Equal(t, description, *got.Description)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, custom_errors.ErrEventNotFound)
}

func TestEventRepository_List(t *testing.T) {
	repo := setupEventTest(t)
	ctx := context.Background()

	events, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = repo.Create(ctx, &model.CreateEventDTO{Title: "First", Date: "2026-09-01", Time: "18:00"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.CreateEventDTO{Title: "Second", Date: "2026-09-02", Time: "19:00"})
	require.NoError(t, err)

	events, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestEventRepository_Delete(t *testing.T) {
	repo := setupEventTest(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.CreateEventDTO{Title: "Meetup", Date: "2026-09-01", Time: "18:00"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrEventNotFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrEventNotFound)
}
