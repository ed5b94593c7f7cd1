package redis

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const dialTimeout = 5 * time.Second

// NewClient connects to Redis and pings it before returning.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(dialCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

// QueryCache stores serialized list results in Redis.
type QueryCache struct {
	client redis.Cmdable
	logger *logger.Logger
}

func NewQueryCache(client redis.Cmdable, log *logger.Logger) *QueryCache {
	return &QueryCache{
		client: client,
		logger: log.Named("QueryCache"),
	}
}

func (c *QueryCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		c.logger.Error("Redis Get operation failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("QueryCache.Get for key '%s': %w", key, err)
	}
	return val, nil
}

func (c *QueryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Error("Redis Set operation failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("QueryCache.Set for key '%s': %w", key, err)
	}
	c.logger.Debug("Redis Set operation successful", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

// NopCache never stores anything; every Get is a miss.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, error) {
	return nil, domain.ErrCacheMiss
}

func (NopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// QueryKey builds a cache key from a prefix and the query parameters. Keys
// and values are URL-escaped and sorted by key before hashing, so equal
// queries share a key and a separator inside a value cannot alias another
// parameter.
func QueryKey(prefix string, params map[string]string) string {
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}
	sum := md5.Sum([]byte(values.Encode()))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
