package engagement_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
	cache_mock "eventsphere-api/mocks/cache"
	engagement_service_mock "eventsphere-api/mocks/engagement"
	metrics_mock "eventsphere-api/mocks/metrics"
)

func TestLikeServiceCacheDecorator_ToggleLike(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()

	toggled := &model.Post{ID: 1, Likes: model.Likes{Count: 1, Users: []string{"u1"}}}

	t.Run("caches the post and invalidates the feed", func(t *testing.T) {
		inner := engagement_service_mock.NewService(t)
		feedCache := cache_mock.NewFeedCache(t)
		metricsProvider := metrics_mock.NewMetricsProvider(t)

		inner.On("ToggleLike", mock.Anything, int64(1), "u1").Return(toggled, true, nil)
		feedCache.On("SetPost", mock.Anything, toggled).Return(nil)
		metricsProvider.On("RecordCacheOperationDuration", "post_set", mock.Anything)
		feedCache.On("InvalidateFeed", mock.Anything).Return(nil)

		decorator := NewLikeServiceCacheDecorator(inner, feedCache, log, metricsProvider)
		post, liked, err := decorator.ToggleLike(ctx, 1, "u1")

		require.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, toggled, post)
	})

	t.Run("cache failures do not fail the toggle", func(t *testing.T) {
		inner := engagement_service_mock.NewService(t)
		feedCache := cache_mock.NewFeedCache(t)
		metricsProvider := metrics_mock.NewMetricsProvider(t)

		inner.On("ToggleLike", mock.Anything, int64(1), "u1").Return(toggled, false, nil)
		feedCache.On("SetPost", mock.Anything, toggled).Return(assert.AnError)
		metricsProvider.On("RecordCacheOperationDuration", "post_set", mock.Anything)
		feedCache.On("InvalidateFeed", mock.Anything).Return(assert.AnError)

		decorator := NewLikeServiceCacheDecorator(inner, feedCache, log, metricsProvider)
		post, liked, err := decorator.ToggleLike(ctx, 1, "u1")

		require.NoError(t, err)
		assert.False(t, liked)
		assert.Equal(t, toggled, post)
	})

	t.Run("service error skips cache work", func(t *testing.T) {
		inner := engagement_service_mock.NewService(t)
		feedCache := cache_mock.NewFeedCache(t)
		metricsProvider := metrics_mock.NewMetricsProvider(t)

		inner.On("ToggleLike", mock.Anything, int64(1), "u1").
			Return(nil, false, custom_errors.ErrPostNotFound)

		decorator := NewLikeServiceCacheDecorator(inner, feedCache, log, metricsProvider)
		post, _, err := decorator.ToggleLike(ctx, 1, "u1")

		require.Error(t, err)
		assert.Nil(t, post)
	})
}
