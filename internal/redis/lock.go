package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireGuideLock attempts to acquire the scheduling lock for a guide.
// Booking creation holds it across the overlap check and insert so two
// concurrent requests cannot both pass the check.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireGuideLock(ctx context.Context, guideID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:guide:%s", guideID)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseGuideLock releases the scheduling lock for a guide.
func (s *LockStore) ReleaseGuideLock(ctx context.Context, guideID string) error {
	key := fmt.Sprintf("lock:guide:%s", guideID)

	return s.client.Del(ctx, key).Err()
}
