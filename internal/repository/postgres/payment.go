package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/repository"
)

// PaymentRepository is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentRepository struct {
	q Querier
}

// NewPaymentRepository creates a new PostgreSQL payment repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{q: db}
}

// NewPaymentRepositoryWithTx creates a payment repository using a transaction.
func NewPaymentRepositoryWithTx(tx *sql.Tx) *PaymentRepository {
	return &PaymentRepository{q: tx}
}

// Create persists a new payment. The unique constraint on booking_id makes
// the insert the authoritative duplicate check; a concurrent double-submit
// loses at the database rather than at an application-level read.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, method, amount, external_reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.Method,
		payment.Amount,
		payment.ExternalReference,
		payment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}

	return nil
}

// GetByBookingID retrieves the payment for a booking.
// Returns nil without error when the booking has no payment.
func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error) {
	query := `
		SELECT id, booking_id, method, amount, external_reference, created_at
		FROM payments WHERE booking_id = $1
	`

	var payment domain.Payment
	err := r.q.QueryRowContext(ctx, query, bookingID).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Method,
		&payment.Amount,
		&payment.ExternalReference,
		&payment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}
