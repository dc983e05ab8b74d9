package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitcore/users-service/internal/domain/ports"
)

// ErrCacheMiss indica ausência da chave no cache
var ErrCacheMiss = errors.New("cache miss")

// Cache é um wrapper fino sobre go-redis com serialização JSON
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger ports.Logger
}

// NewCache conecta ao Redis a partir de uma URL (redis://...)
func NewCache(url string, ttl time.Duration, logger ports.Logger) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("redis connected successfully", "addr", opts.Addr)
	return &Cache{client: client, ttl: ttl, logger: logger}, nil
}

// Get desserializa a chave em dest; ErrCacheMiss na ausência
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Set serializa value sob a chave com o TTL padrão
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Delete remove a chave
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close encerra a conexão
func (c *Cache) Close() error {
	return c.client.Close()
}
