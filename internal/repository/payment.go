package repository

import (
	"context"

	"gabaylaguna/internal/domain"
)

// PaymentRepository defines the persistence operations for payments.
type PaymentRepository interface {
	// Create persists a new payment. Returns ErrDuplicate when a payment
	// already exists for the booking (unique constraint on booking_id).
	Create(ctx context.Context, payment *domain.Payment) error

	// GetByBookingID retrieves the payment for a booking.
	// Returns nil without error when the booking has no payment.
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error)
}
