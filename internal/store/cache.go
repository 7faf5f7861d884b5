package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"sitefactory/internal/types"
)

// SlugCache is a read-through cache in front of the public slug lookup, the
// one hot read path (shared preview pages). A nil client disables it, so the
// server runs fine without Redis. Cache problems are logged, never surfaced:
// the database remains the source of truth.
type SlugCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSlugCache(client *redis.Client, ttl time.Duration) *SlugCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SlugCache{client: client, ttl: ttl}
}

func cacheKey(slug string) string {
	return "project:slug:" + slug
}

func (c *SlugCache) Get(ctx context.Context, slug string) (*types.Project, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, cacheKey(slug)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("slug cache read failed", "slug", slug, "err", err)
		return nil, false
	}
	var p types.Project
	if err := json.Unmarshal(raw, &p); err != nil {
		slog.Warn("slug cache entry corrupt, dropping", "slug", slug, "err", err)
		c.Invalidate(ctx, slug)
		return nil, false
	}
	return &p, true
}

func (c *SlugCache) Set(ctx context.Context, p *types.Project) {
	if c == nil || c.client == nil || p == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(p.Slug), raw, c.ttl).Err(); err != nil {
		slog.Warn("slug cache write failed", "slug", p.Slug, "err", err)
	}
}

func (c *SlugCache) Invalidate(ctx context.Context, slug string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, cacheKey(slug)).Err(); err != nil {
		slog.Warn("slug cache invalidation failed", "slug", slug, "err", err)
	}
}
