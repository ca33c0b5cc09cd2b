package templates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "gonorth:template"

// CachedProvider keeps templates fetched from another provider in redis.
// Cache failures are logged and fall through to the wrapped provider.
type CachedProvider struct {
	next   Provider
	client *redis.Client
	ttl    time.Duration
}

func NewCachedProvider(next Provider, client *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

// NewRedisClient connects to the redis instance at url and pings it.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return client, nil
}

func cacheKey(projectId string, t Type) string {
	return fmt.Sprintf("%s:%s:%s", cacheKeyPrefix, projectId, t)
}

func (p *CachedProvider) GetTemplate(ctx context.Context, projectId string, t Type) (*ExportTemplate, error) {
	key := cacheKey(projectId, t)

	raw, err := p.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		tmpl := &ExportTemplate{}
		if err := json.Unmarshal(raw, tmpl); err != nil {
			slog.WarnContext(ctx, "discarding unreadable cached template", "key", key, "error", err)
			break
		}
		return tmpl, nil
	case errors.Is(err, redis.Nil):
	default:
		slog.WarnContext(ctx, "template cache read failed", "key", key, "error", err)
	}

	tmpl, err := p.next.GetTemplate(ctx, projectId, t)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(tmpl)
	if err != nil {
		return nil, fmt.Errorf("marshalling template %s: %w", t, err)
	}
	if err := p.client.Set(ctx, key, data, p.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "template cache write failed", "key", key, "error", err)
	}

	return tmpl, nil
}

// Invalidate drops the cached template of a project.
func (p *CachedProvider) Invalidate(ctx context.Context, projectId string, t Type) error {
	if err := p.client.Del(ctx, cacheKey(projectId, t)).Err(); err != nil {
		return fmt.Errorf("invalidating template %s: %w", t, err)
	}
	return nil
}
