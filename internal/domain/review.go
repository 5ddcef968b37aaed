package domain

import "time"

// Review represents a tourist's rating of a completed booking.
// At most one review exists per booking.
type Review struct {
	ID        string
	BookingID string
	GuideID   string // denormalized from the booking for per-guide aggregation
	TouristID string
	Rating    int // 1..5
	Comment   string
	CreatedAt time.Time
}
