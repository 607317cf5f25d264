package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Peniel-source/flight-board-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

const (
	boardKeyPrefix   = "board:cache:"
	airportKeyPrefix = "airport:cache:"
)

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisCache stores board and airport results as JSON with the TTL as the
// key expiration, so staleness is handled by the store itself.
type RedisCache struct {
	redis RedisClient
	ttl   time.Duration
}

func NewRedisCache(redis RedisClient, ttl time.Duration) *RedisCache {
	return &RedisCache{
		redis: redis,
		ttl:   ttl,
	}
}

func (c *RedisCache) GetBoard(ctx context.Context, key string) (dto.BoardResult, error) {
	data, err := c.redis.Get(ctx, boardKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return dto.BoardResult{}, ErrCacheMiss
		}

		return dto.BoardResult{}, fmt.Errorf("failed to get board: %w", err)
	}

	var result dto.BoardResult
	if err := json.Unmarshal(data, &result); err != nil {
		return dto.BoardResult{}, fmt.Errorf("failed to unmarshal board: %w", err)
	}

	return result, nil
}

func (c *RedisCache) SetBoard(ctx context.Context, key string, result dto.BoardResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal board: %w", err)
	}

	if err := c.redis.Set(ctx, boardKeyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set board: %w", err)
	}

	return nil
}

func (c *RedisCache) GetAirports(ctx context.Context, key string) ([]dto.AirportRecord, error) {
	data, err := c.redis.Get(ctx, airportKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}

		return nil, fmt.Errorf("failed to get airports: %w", err)
	}

	var airports []dto.AirportRecord
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, fmt.Errorf("failed to unmarshal airports: %w", err)
	}

	return airports, nil
}

func (c *RedisCache) SetAirports(ctx context.Context, key string, airports []dto.AirportRecord) error {
	data, err := json.Marshal(airports)
	if err != nil {
		return fmt.Errorf("failed to marshal airports: %w", err)
	}

	if err := c.redis.Set(ctx, airportKeyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set airports: %w", err)
	}

	return nil
}

// Clear deletes every key under both cache prefixes.
func (c *RedisCache) Clear(ctx context.Context) error {
	for _, prefix := range []string{boardKeyPrefix, airportKeyPrefix} {
		var cursor uint64

		for {
			keys, next, err := c.redis.Scan(ctx, cursor, prefix+"*", 100).Result()
			if err != nil {
				return fmt.Errorf("failed to scan cache keys: %w", err)
			}

			if len(keys) > 0 {
				if err := c.redis.Del(ctx, keys...).Err(); err != nil {
					return fmt.Errorf("failed to delete cache keys: %w", err)
				}
			}

			cursor = next
			if cursor == 0 {
				break
			}
		}
	}

	return nil
}
