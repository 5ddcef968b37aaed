package repository

import (
	"context"

	"gabaylaguna/internal/domain"
)

// ReviewRepository defines the persistence operations for reviews.
type ReviewRepository interface {
	// Create persists a new review. Returns ErrDuplicate when a review
	// already exists for the booking (unique constraint on booking_id).
	Create(ctx context.Context, review *domain.Review) error

	// GetByBookingID retrieves the review for a booking.
	// Returns nil without error when the booking has no review.
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Review, error)

	// ListByGuide retrieves all reviews for a guide, newest first.
	ListByGuide(ctx context.Context, guideID string) ([]*domain.Review, error)

	// AverageForGuide returns the mean rating across the guide's reviews,
	// or 0 when the guide has none.
	AverageForGuide(ctx context.Context, guideID string) (float64, error)
}
