package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "petster:viewcount:"

// RedisCounts comparte el cache de viewCount entre instancias.
type RedisCounts struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient abre el cliente y hace ping.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func NewRedisCounts(client *redis.Client, ttl time.Duration) *RedisCounts {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisCounts{client: client, ttl: ttl}
}

func countKey(petID string) string {
	return keyPrefix + petID
}

// GetMany hace un solo MGET; las claves ausentes o corruptas cuentan como miss.
func (c *RedisCounts) GetMany(ctx context.Context, petIDs []string) (map[string]int, error) {
	out := make(map[string]int, len(petIDs))
	if len(petIDs) == 0 {
		return out, nil
	}

	keys := make([]string, len(petIDs))
	for i, id := range petIDs {
		keys[i] = countKey(id)
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis mget: %w", err)
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		out[petIDs[i]] = n
	}
	return out, nil
}

func (c *RedisCounts) SetMany(ctx context.Context, counts map[string]int) error {
	if len(counts) == 0 {
		return nil
	}
	_, err := c.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for id, n := range counts {
			p.Set(ctx, countKey(id), n, c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis pipeline set: %w", err)
	}
	return nil
}

func (c *RedisCounts) Invalidate(ctx context.Context, petID string) error {
	if err := c.client.Del(ctx, countKey(petID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
