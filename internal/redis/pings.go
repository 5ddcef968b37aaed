package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"gabaylaguna/internal/domain"
)

const (
	pingKeyPrefix = "booking:ping:"

	// PingTTL bounds retention: only the latest ping per booking is kept,
	// and even that expires a day after the last report.
	PingTTL = 24 * time.Hour
)

// publishScript stores a ping only if it is newer than the stored one,
// so a delayed write with an older recorded_at never replaces fresh data.
var publishScript = redis.NewScript(`
local ts = tonumber(redis.call('HGET', KEYS[1], 'ts'))
if ts and ts >= tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'ts', ARGV[1], 'data', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// PingStore keeps the latest location ping per booking in Redis.
type PingStore struct {
	client *redis.Client
}

// NewPingStore creates a new PingStore.
func NewPingStore(client *redis.Client) *PingStore {
	return &PingStore{client: client}
}

// Publish stores the ping as the booking's latest location. Returns false
// when the write was discarded because a newer ping is already stored.
func (s *PingStore) Publish(ctx context.Context, ping *domain.LocationPing) (bool, error) {
	data, err := json.Marshal(ping)
	if err != nil {
		return false, err
	}

	key := pingKeyPrefix + ping.BookingID
	stored, err := publishScript.Run(ctx, s.client, []string{key},
		ping.RecordedAt.UnixMilli(),
		data,
		PingTTL.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}

	return stored == 1, nil
}

// Latest returns the most recent ping for a booking, or nil when the guide
// has never published (or the retention window elapsed).
func (s *PingStore) Latest(ctx context.Context, bookingID string) (*domain.LocationPing, error) {
	data, err := s.client.HGet(ctx, pingKeyPrefix+bookingID, "data").Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var ping domain.LocationPing
	if err := json.Unmarshal(data, &ping); err != nil {
		return nil, err
	}
	return &ping, nil
}
