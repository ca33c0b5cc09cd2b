package command

import (
	"context"
	"fmt"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/gonorth-export/internal/templates"
)

const defaultCacheTTL = 5 * time.Minute

// CacheConfig enables the redis template cache when RedisURL is set.
type CacheConfig struct {
	RedisURL string `json:"redis_url"`
	TTL      string `json:"ttl"`
}

func (c *CacheConfig) validate() error {
	el := errors.NewErrorList()

	if c.TTL != "" {
		d, err := time.ParseDuration(c.TTL)
		if err != nil {
			el.Add(fmt.Errorf("parsing cache ttl: %w", err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("cache ttl must be positive"))
		}
	}
	if c.TTL != "" && c.RedisURL == "" {
		el.Add(fmt.Errorf("cache ttl set without redis_url"))
	}

	return el.Err()
}

func (c *CacheConfig) ttl() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil || d <= 0 {
		return defaultCacheTTL
	}
	return d
}

// wrap puts the redis cache in front of next. Without a redis url next is
// returned unchanged.
func (c *CacheConfig) wrap(ctx context.Context, next templates.Provider) (templates.Provider, error) {
	if c.RedisURL == "" {
		return next, nil
	}
	client, err := templates.NewRedisClient(ctx, c.RedisURL)
	if err != nil {
		return nil, err
	}
	return templates.NewCachedProvider(next, client, c.ttl()), nil
}
