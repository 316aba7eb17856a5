package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/maiunguwa377/caseflow/internal/core/domain"
)

const caseListKey = "cases:all"

// CaseCache is a Redis-backed read-through cache for the full case list.
// Entries expire after ttl; mutations invalidate the key eagerly.
type CaseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCaseCache creates a CaseCache wrapping the given Redis client.
func NewCaseCache(client *redis.Client, ttl time.Duration) *CaseCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CaseCache{client: client, ttl: ttl}
}

// Get returns the cached case list. The second return value is false on
// a miss; a miss is not an error.
func (c *CaseCache) Get(ctx context.Context) ([]domain.Case, bool, error) {
	raw, err := c.client.Get(ctx, caseListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var cases []domain.Case
	if err := json.Unmarshal(raw, &cases); err != nil {
		// Corrupt entry: treat as a miss so the caller refreshes it.
		return nil, false, nil
	}
	return cases, true, nil
}

// Set stores the case list with the configured TTL.
func (c *CaseCache) Set(ctx context.Context, cases []domain.Case) error {
	raw, err := json.Marshal(cases)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, caseListKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached list after a mutation.
func (c *CaseCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, caseListKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
