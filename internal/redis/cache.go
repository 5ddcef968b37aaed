package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// GuideCacheTTL is short: rates change rarely but a stale rate must not
// outlive a directory update for long, since it prices new bookings.
const GuideCacheTTL = 60 * time.Second

const guideCachePrefix = "cache:guide:"

// CachedGuide represents a cached guide directory entry.
type CachedGuide struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
	City       string  `json:"city"`
}

// GetGuide retrieves a guide from cache. Returns nil on a miss.
func (s *CacheStore) GetGuide(ctx context.Context, guideID string) (*CachedGuide, error) {
	data, err := s.client.Get(ctx, guideCachePrefix+guideID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var guide CachedGuide
	if err := json.Unmarshal(data, &guide); err != nil {
		return nil, err
	}
	return &guide, nil
}

// SetGuide stores a guide in cache.
func (s *CacheStore) SetGuide(ctx context.Context, guide *CachedGuide) error {
	data, err := json.Marshal(guide)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, guideCachePrefix+guide.ID, data, GuideCacheTTL).Err()
}

// InvalidateGuide removes a guide from cache.
func (s *CacheStore) InvalidateGuide(ctx context.Context, guideID string) error {
	return s.client.Del(ctx, guideCachePrefix+guideID).Err()
}
