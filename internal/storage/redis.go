package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/garrettladley/swimlight/internal/daterange"
)

var _ DateCache = (*RedisCache)(nil)

const workoutDatesKey = "swimlight:workout_dates"

type RedisConfig struct {
	Client *redis.Client
}

type RedisCache struct {
	client   *redis.Client
	bucketer daterange.Bucketer
}

func NewRedisCache(cfg RedisConfig, bucketer daterange.Bucketer) *RedisCache {
	return &RedisCache{client: cfg.Client, bucketer: bucketer}
}

func (c *RedisCache) Load(ctx context.Context) ([]time.Time, error) {
	data, err := c.client.Get(ctx, workoutDatesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get workout dates: %w", err)
	}

	var p payload
	if err := go_json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode workout dates: %w", err)
	}
	return decode(p, c.bucketer)
}

func (c *RedisCache) Save(ctx context.Context, dates []time.Time) error {
	data, err := go_json.Marshal(encode(dates, c.bucketer))
	if err != nil {
		return fmt.Errorf("encode workout dates: %w", err)
	}
	if err := c.client.Set(ctx, workoutDatesKey, data, 0).Err(); err != nil {
		return fmt.Errorf("set workout dates: %w", err)
	}
	return nil
}
