package redis

import (
	"context"
	"time"

	"gabaylaguna/internal/domain"
)

// PingStoreInterface defines the interface for guide location pings.
type PingStoreInterface interface {
	Publish(ctx context.Context, ping *domain.LocationPing) (bool, error)
	Latest(ctx context.Context, bookingID string) (*domain.LocationPing, error)
}

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireGuideLock(ctx context.Context, guideID string, ttl time.Duration) (bool, error)
	ReleaseGuideLock(ctx context.Context, guideID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ PingStoreInterface = (*PingStore)(nil)
	_ LockStoreInterface = (*LockStore)(nil)
)
