package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache is a read-through JSON cache over Redis. A nil client disables
// caching and every read goes to the loader.
type Cache struct {
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func New(rdb *redis.Client, logger ...*zap.Logger) *Cache {
	l := zap.L().Named("shared.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shared.cache")
	}
	return &Cache{rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

// Remember returns the cached value under key, or calls load once per key
// across concurrent callers and stores its result for ttl.
func Remember[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	if c != nil && c.rdb != nil {
		if cached, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
			var v T
			if json.Unmarshal(cached, &v) == nil {
				return v, nil
			}
		} else if err != redis.Nil {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	if c == nil {
		return load(ctx)
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		v, err := load(ctx)
		if err != nil {
			return v, err
		}
		if c.rdb != nil {
			if data, err := json.Marshal(v); err == nil {
				if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
					c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate drops keys. Failures are logged; a stale entry expires on its TTL.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("failed to invalidate cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
