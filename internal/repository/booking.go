package repository

import (
	"context"
	"time"

	"gabaylaguna/internal/domain"
)

// BookingFilter selects the bookings visible to a principal.
// Exactly one of TouristID/GuideID is set for scoped listings; both empty
// means an unscoped (admin) listing. Status is an optional bucket.
type BookingFilter struct {
	TouristID string
	GuideID   string
	Status    domain.BookingStatus
}

// ListCap bounds List results. Listings return at most this many rows,
// newest first; older bookings beyond the cap are not returned.
const ListCap = 200

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// List retrieves bookings matching the filter, newest first, capped
	// at ListCap rows.
	List(ctx context.Context, filter BookingFilter) ([]*domain.Booking, error)

	// UpdateStatus transitions a booking from one status to another.
	// The update is conditional on the current status so that concurrent
	// transitions cannot overwrite each other; ErrNotFound is returned
	// when no row matches (missing booking or lost race).
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error

	// HasOverlap reports whether the guide already has a pending or
	// confirmed booking overlapping the [start, end) window.
	HasOverlap(ctx context.Context, guideID string, start, end time.Time) (bool, error)
}
