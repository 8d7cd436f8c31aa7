package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"timeline-service/internal/custom_errors"
	ports "timeline-service/internal/domain/ports/output"
	"timeline-service/internal/infrastructure/config"
)

const connectTimeout = 5 * time.Second

// Client stores JSON values under string keys.
type Client struct {
	rdb redis.UniversalClient
	log ports.Logger
}

func NewClient(cfg config.Redis, log ports.Logger) (*Client, error) {
	addr := net.JoinHostPort(cfg.Address, strconv.Itoa(cfg.Port))
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis %s unreachable: %w", addr, err)
	}

	log.Info("Connected to Redis", slog.String("address", addr), slog.Int("db", cfg.DB))
	return NewClientFromRedis(rdb, log), nil
}

// NewClientFromRedis wraps an already configured go-redis client.
func NewClientFromRedis(rdb redis.UniversalClient, log ports.Logger) *Client {
	return &Client{rdb: rdb, log: log}
}

// GetJSON decodes the value at key into dest. A missing key yields
// custom_errors.ErrCacheMiss.
func (c *Client) GetJSON(ctx context.Context, key string, dest any) error {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return custom_errors.ErrCacheMiss
	case err != nil:
		c.log.Warn("Redis GET failed", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("Dropping undecodable cache entry", slog.String("key", key), slog.String("error", err.Error()))
		_ = c.rdb.Del(ctx, key).Err()
		return custom_errors.ErrCacheMiss
	}
	return nil
}

func (c *Client) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Warn("Redis SET failed", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// GetInt reads an integer counter. A missing key reads as 0.
func (c *Client) GetInt(ctx context.Context, key string) (int64, error) {
	n, err := c.rdb.Get(ctx, key).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("redis get %s: %w", key, err)
	}
	return n, nil
}

func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr %s: %w", key, err)
	}
	return n, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	if err := c.rdb.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	c.log.Info("Redis connection closed")
	return nil
}
