package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shortlink:alias:"

// ErrMiss возвращается когда ключа нет в кэше
var ErrMiss = errors.New("cache miss")

// RedisCache кэширует полный URL по алиасу в Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache подключается к Redis и проверяет соединение
func NewRedisCache(ctx context.Context, addr string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return NewRedisCacheWithClient(client, ttl), nil
}

// NewRedisCacheWithClient оборачивает готовый клиент
func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

// Get возвращает полный URL для алиаса или ErrMiss
func (c *RedisCache) Get(ctx context.Context, shortURL string) (string, error) {
	fullURL, err := c.client.Get(ctx, key(shortURL)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s from redis: %w", shortURL, err)
	}

	return fullURL, nil
}

// Set сохраняет полный URL для алиаса на время ttl
func (c *RedisCache) Set(ctx context.Context, shortURL, fullURL string) error {
	if err := c.client.Set(ctx, key(shortURL), fullURL, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", shortURL, err)
	}

	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func key(shortURL string) string {
	return keyPrefix + shortURL
}
