package redis

import (
	"context"
	"fmt"
	"time"

	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
)

const (
	feedKey    = "feed:all"
	postKeyFmt = "post:%d"
	feedTTL    = 2 * time.Minute
	postTTL    = 5 * time.Minute
)

type cachedFeed struct {
	Posts []*model.Post `json:"posts"`
	Total int           `json:"total"`
}

type FeedCache struct {
	client *Client
	log    *logger.Logger
}

func NewFeedCache(client *Client, log *logger.Logger) *FeedCache {
	return &FeedCache{client: client, log: log}
}

func (c *FeedCache) GetFeed(ctx context.Context) ([]*model.Post, int, error) {
	var feed cachedFeed
	if err := c.client.Get(ctx, feedKey, &feed); err != nil {
		return nil, 0, err
	}
	return feed.Posts, feed.Total, nil
}

func (c *FeedCache) SetFeed(ctx context.Context, posts []*model.Post, total int) error {
	return c.client.Set(ctx, feedKey, cachedFeed{Posts: posts, Total: total}, feedTTL)
}

func (c *FeedCache) InvalidateFeed(ctx context.Context) error {
	return c.client.Delete(ctx, feedKey)
}

func (c *FeedCache) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := c.client.Get(ctx, fmt.Sprintf(postKeyFmt, id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *FeedCache) SetPost(ctx context.Context, post *model.Post) error {
	return c.client.Set(ctx, fmt.Sprintf(postKeyFmt, post.ID), post, postTTL)
}

func (c *FeedCache) DeletePost(ctx context.Context, id int64) error {
	return c.client.Delete(ctx, fmt.Sprintf(postKeyFmt, id))
}
