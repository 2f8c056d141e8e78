package engagement_service

import (
	"context"
	"log/slog"
	"time"

	"eventsphere-api/internal/cache"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/metrics"
	"eventsphere-api/internal/model"
)

// LikeServiceCacheDecorator keeps the cached post and feed in step with
// toggle results. Cache writes are best-effort; the toggle outcome is already
// durable when they run.
type LikeServiceCacheDecorator struct {
	service Service
	cache   cache.FeedCache
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func NewLikeServiceCacheDecorator(
	service Service,
	feedCache cache.FeedCache,
	log *logger.Logger,
	metricsProvider metrics.MetricsProvider,
) Service {
	return &LikeServiceCacheDecorator{
		service: service,
		cache:   feedCache,
		log:     log,
		metrics: metricsProvider,
	}
}

func (d *LikeServiceCacheDecorator) ToggleLike(ctx context.Context, postID int64, userID string) (*model.Post, bool, error) {
	post, liked, err := d.service.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	if cacheErr := d.cache.SetPost(ctx, post); cacheErr != nil {
		d.log.Warn("Failed to cache post after like toggle",
			slog.Int64("post_id", post.ID),
			slog.String("error", cacheErr.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(start))

	if cacheErr := d.cache.InvalidateFeed(ctx); cacheErr != nil {
		d.log.Warn("Failed to invalidate feed cache after like toggle",
			slog.Int64("post_id", post.ID),
			slog.String("error", cacheErr.Error()))
	}

	return post, liked, nil
}
