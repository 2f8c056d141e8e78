package feed_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"eventsphere-api/internal/cache"
	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/metrics"
	"eventsphere-api/internal/model"
)

type FeedServiceCacheDecorator struct {
	service Service
	cache   cache.FeedCache
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func NewFeedServiceCacheDecorator(
	service Service,
	feedCache cache.FeedCache,
	log *logger.Logger,
	metricsProvider metrics.MetricsProvider,
) Service {
	return &FeedServiceCacheDecorator{
		service: service,
		cache:   feedCache,
		log:     log,
		metrics: metricsProvider,
	}
}

func (d *FeedServiceCacheDecorator) SavePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	result, err := d.service.SavePost(ctx, post)
	if err != nil {
		return nil, err
	}

	if cacheErr := d.cache.InvalidateFeed(ctx); cacheErr != nil {
		d.log.Warn("Failed to invalidate feed cache after post creation",
			slog.Int64("post_id", result.ID),
			slog.String("error", cacheErr.Error()))
	}

	start := time.Now()
	if cacheErr := d.cache.SetPost(ctx, result); cacheErr != nil {
		d.log.Warn("Failed to cache created post",
			slog.Int64("post_id", result.ID),
			slog.String("error", cacheErr.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(start))

	return result, nil
}

func (d *FeedServiceCacheDecorator) ListPosts(ctx context.Context) ([]*model.Post, int, error) {
	start := time.Now()
	posts, total, err := d.cache.GetFeed(ctx)
	d.metrics.RecordCacheOperationDuration("feed_get", time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return posts, total, nil
	}

	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to read feed cache", slog.String("error", err.Error()))
	}

	posts, total, err = d.service.ListPosts(ctx)
	if err != nil {
		return nil, 0, err
	}

	setStart := time.Now()
	if cacheErr := d.cache.SetFeed(ctx, posts, total); cacheErr != nil {
		d.log.Warn("Failed to cache feed", slog.String("error", cacheErr.Error()))
	}
	d.metrics.RecordCacheOperationDuration("feed_set", time.Since(setStart))

	return posts, total, nil
}
