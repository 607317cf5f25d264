package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Peniel-source/flight-board-service/internal/app/dto"
)

// ErrCacheMiss is returned when a key is absent or its entry has gone stale.
var ErrCacheMiss = errors.New("cache miss")

// BoardKey builds the cache key for a board lookup.
func BoardKey(code, boardType string) string {
	return fmt.Sprintf("%s-%s", strings.ToUpper(strings.TrimSpace(code)), boardType)
}

// AirportKey builds the cache key for an airport search query.
func AirportKey(query string) string {
	return strings.ToUpper(strings.TrimSpace(query))
}

type entry[T any] struct {
	data T
	ts   time.Time
}

// MemoryCache is an in-process TTL cache with separate namespaces for board
// lookups and airport searches. Staleness is checked on read; stale entries
// are left in place and overwritten by the next set.
type MemoryCache struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	boards   map[string]entry[dto.BoardResult]
	airports map[string]entry[[]dto.AirportRecord]
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:      ttl,
		now:      time.Now,
		boards:   make(map[string]entry[dto.BoardResult]),
		airports: make(map[string]entry[[]dto.AirportRecord]),
	}
}

func (c *MemoryCache) GetBoard(_ context.Context, key string) (dto.BoardResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.boards[key]
	if !ok || c.now().Sub(e.ts) >= c.ttl {
		return dto.BoardResult{}, ErrCacheMiss
	}

	return e.data, nil
}

func (c *MemoryCache) SetBoard(_ context.Context, key string, result dto.BoardResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.boards[key] = entry[dto.BoardResult]{data: result, ts: c.now()}

	return nil
}

func (c *MemoryCache) GetAirports(_ context.Context, key string) ([]dto.AirportRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.airports[key]
	if !ok || c.now().Sub(e.ts) >= c.ttl {
		return nil, ErrCacheMiss
	}

	return e.data, nil
}

func (c *MemoryCache) SetAirports(_ context.Context, key string, airports []dto.AirportRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.airports[key] = entry[[]dto.AirportRecord]{data: airports, ts: c.now()}

	return nil
}

// Clear drops both namespaces.
func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.boards = make(map[string]entry[dto.BoardResult])
	c.airports = make(map[string]entry[[]dto.AirportRecord])

	return nil
}
