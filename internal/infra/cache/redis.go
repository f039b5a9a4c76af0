package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

const defaultKeyPrefix = "docaid:snapshot"

// RedisClient подмножество команд go-redis, используемое кэшем
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisCache снимки в Redis, сериализованные в JSON
type RedisCache struct {
	client RedisClient
	prefix string
	ttl    time.Duration
}

// NewRedisCache создаёт кэш. ttl <= 0 означает хранение без срока.
func NewRedisCache(client RedisClient, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	if ttl < 0 {
		ttl = 0
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

// Put сохраняет список под ключом
func (c *RedisCache) Put(ctx context.Context, key string, bookings []*domain.Booking) error {
	payload, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCodec, err)
	}

	if err := c.client.Set(ctx, c.key(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrBackend, key, err)
	}
	return nil
}

// Get возвращает снимок или ErrMiss
func (c *RedisCache) Get(ctx context.Context, key string) ([]*domain.Booking, error) {
	payload, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrBackend, key, err)
	}

	bookings := make([]*domain.Booking, 0)
	if err := json.Unmarshal(payload, &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodec, err)
	}
	return bookings, nil
}

func (c *RedisCache) key(key string) string {
	return c.prefix + ":" + key
}
