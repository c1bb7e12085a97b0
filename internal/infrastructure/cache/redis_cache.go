package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"oficina_api/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "oficina:list:"
	defaultTTL = 5 * time.Minute
)

// RedisCollectionCache stores JSON-encoded list snapshots in Redis, one key
// per collection. Entries expire after a short TTL so a missed invalidation
// heals on its own.

type RedisCollectionCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ICollectionCache = (*RedisCollectionCache)(nil)

// NewRedisCollectionCacheFromEnv builds the cache from REDIS_ADDR and
// REDIS_PASSWORD. When REDIS_ADDR is unset it returns nil, which the use
// cases treat as caching disabled.
func NewRedisCollectionCacheFromEnv() *RedisCollectionCache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	return &RedisCollectionCache{client: client, ttl: defaultTTL}
}

func (c *RedisCollectionCache) GetList(ctx context.Context, collection string, dest interface{}) (bool, error) {
	payload, err := c.client.Get(ctx, keyPrefix+collection).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCollectionCache) SetList(ctx context.Context, collection string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefix+collection, payload, c.ttl).Err()
}

func (c *RedisCollectionCache) Invalidate(ctx context.Context, collections ...string) error {
	if len(collections) == 0 {
		return nil
	}
	keys := make([]string, 0, len(collections))
	for _, collection := range collections {
		keys = append(keys, keyPrefix+collection)
	}
	return c.client.Del(ctx, keys...).Err()
}
