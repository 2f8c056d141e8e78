package feed_service

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
	feed_service_mock "eventsphere-api/mocks/feed"
	metrics_mock "eventsphere-api/mocks/metrics"
)

func TestFeedServiceCacheDecorator_ListPosts(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()

	cachedPosts := []*model.Post{{ID: 1, Message: "cached"}}
	freshPosts := []*model.Post{{ID: 1, Message: "fresh"}, {ID: 2, Message: "second"}}

	tests := []struct {
		name      string
		mocks     func(inner *feed_service_mock.Service, feedCache *cache_mock.FeedCache, metricsProvider *metrics_mock.MetricsProvider)
		wantPosts []*model.Post
		wantTotal int
		wantErr   bool
	}{
		{
			name: "cache hit skips the repository",
			mocks: func(inner *feed_service_mock.Service, feedCache *cache_mock.FeedCache, metricsProvider *metrics_mock.MetricsProvider) {
				feedCache.On("GetFeed", mock.Anything).Return(cachedPosts, 1, nil)
				metricsProvider.On("RecordCacheOperationDuration", "feed_get", mock.Anything)
				metricsProvider.On("IncrementCacheHits")
			},
			wantPosts: cachedPosts,
			wantTotal: 1,
		},
		{
			name: "cache miss falls through and repopulates",
			mocks: func(inner *feed_service_mock.Service, feedCache *cache_mock.FeedCache, metricsProvider *metrics_mock.MetricsProvider) {
				feedCache.On("GetFeed", mock.Anything).Return(nil, 0, custom_errors.ErrCacheMiss)
				metricsProvider.On("RecordCacheOperationDuration", "feed_get", mock.Anything)
				metricsProvider.On("IncrementCacheMisses")
				inner.On("ListPosts", mock.Anything).Return(freshPosts, 2, nil)
				feedCache.On("SetFeed", mock.Anything, freshPosts, 2).Return(nil)
				metricsProvider.On("RecordCacheOperationDuration", "feed_set", mock.Anything)
			},
			wantPosts: freshPosts,
			wantTotal: 2,
		},
		{
			name: "cache write failure is tolerated",
			mocks: func(inner *feed_service_mock.Service, feedCache *cache_mock.FeedCache, metricsProvider *metrics_mock.MetricsProvider) {
				feedCache.On("GetFeed", mock.Anything).Return(nil, 0, custom_errors.ErrCacheMiss)
				metricsProvider.On("RecordCacheOperationDuration", "feed_get", mock.Anything)
				metricsProvider.On("IncrementCacheMisses")
				inner.On("ListPosts", mock.Anything).Return(freshPosts, 2, nil)
				feedCache.On("SetFeed", mock.Anything, freshPosts, 2).Return(assert.AnError)
				metricsProvider.On("RecordCacheOperationDuration", "feed_set", mock.Anything)
			},
			wantPosts: freshPosts,
			wantTotal: 2,
		},
		{
			name: "repository error propagates",
			mocks: func(inner *feed_service_mock.Service, feedCache *cache_mock.FeedCache, metricsProvider *metrics_mock.MetricsProvider) {
				feedCache.On("GetFeed", mock.Anything).Return(nil, 0, custom_errors.ErrCacheMiss)
				metricsProvider.On("RecordCacheOperationDuration", "feed_get", mock.Anything)
				metricsProvider.On("IncrementCacheMisses")
				inner.On("ListPosts", mock.Anything).Return(nil, 0, custom_errors.ErrDatabaseQuery)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := feed_service_mock.NewService(t)
			feedCache := cache_mock.NewFeedCache(t)
			metricsProvider := metrics_mock.NewMetricsProvider(t)
			tt.mocks(inner, feedCache, metricsProvider)

			decorator := NewFeedServiceCacheDecorator(inner, feedCache, log, metricsProvider)
			posts, total, err := decorator.ListPosts(ctx)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPosts, posts)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestFeedServiceCacheDecorator_SavePost(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()

	dto := &model.CreatePostDTO{Email: "a@b.c", Message: "m"}
	created := &model.Post{ID: 1, Email: "a@b.c", Message: "m"}

	t.Run("invalidates feed and caches the new post", func(t *testing.T) {
		inner := feed_service_mock.NewService(t)
		feedCache := cache_mock.NewFeedCache(t)
		metricsProvider := metrics_mock.NewMetricsProvider(t)

		inner.On("SavePost", mock.Anything, dto).Return(created, nil)
		feedCache.On("InvalidateFeed", mock.Anything).Return(nil)
		feedCache.On("SetPost", mock.Anything, created).Return(nil)
		metricsProvider.On("RecordCacheOperationDuration", "post_set", mock.Anything)

		decorator := NewFeedServiceCacheDecorator(inner, feedCache, log, metricsProvider)
		post, err := decorator.SavePost(ctx, dto)

		require.NoError(t, err)
		assert.Equal(t, created, post)
	})

	t.Run("save error skips cache work", func(t *testing.T) {
		inner := feed_service_mock.NewService(t)
		feedCache := cache_mock.NewFeedCache(t)
		metricsProvider := metrics_mock.NewMetricsProvider(t)

		inner.On("SavePost", mock.Anything, dto).Return(nil, custom_errors.ErrDatabaseQuery)

		decorator := NewFeedServiceCacheDecorator(inner, feedCache, log, metricsProvider)
		post, err := decorator.SavePost(ctx, dto)

		require.Error(t, err)
		assert.Nil(t, post)
	})
}
