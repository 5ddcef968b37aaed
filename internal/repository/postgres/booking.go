package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/repository"
)

var bookingColumns = []string{
	"id", "tourist_id", "guide_id", "poi_id", "tour_date", "start_time",
	"end_time", "duration_hours", "number_of_people", "special_requests",
	"total_amount", "status", "created_at",
}

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// NewBookingRepositoryWithTx creates a booking repository using a transaction.
func NewBookingRepositoryWithTx(tx *sql.Tx) *BookingRepository {
	return &BookingRepository{q: tx}
}

// Create persists a new booking.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, tourist_id, guide_id, poi_id, tour_date, start_time, end_time, duration_hours, number_of_people, special_requests, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	var specialRequests sql.NullString
	if booking.SpecialRequests != "" {
		specialRequests = sql.NullString{String: booking.SpecialRequests, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		booking.ID,
		booking.TouristID,
		booking.GuideID,
		booking.POIID,
		booking.TourDate,
		booking.StartTime,
		booking.EndTime,
		booking.DurationHours,
		booking.NumberOfPeople,
		specialRequests,
		booking.TotalAmount,
		booking.Status,
		booking.CreatedAt,
	)

	return err
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
		SELECT id, tourist_id, guide_id, poi_id, tour_date, start_time, end_time, duration_hours, number_of_people, special_requests, total_amount, status, created_at
		FROM bookings WHERE id = $1
	`

	booking, err := scanBooking(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return booking, nil
}

// List retrieves bookings matching the filter, newest first.
// The filter combination is dynamic, so the query is built with squirrel
// instead of hand-assembled SQL.
func (r *BookingRepository) List(ctx context.Context, filter repository.BookingFilter) ([]*domain.Booking, error) {
	builder := sq.Select(bookingColumns...).
		From("bookings").
		PlaceholderFormat(sq.Dollar).
		OrderBy("created_at DESC").
		Limit(repository.ListCap)

	if filter.TouristID != "" {
		builder = builder.Where(sq.Eq{"tourist_id": filter.TouristID})
	}
	if filter.GuideID != "" {
		builder = builder.Where(sq.Eq{"guide_id": filter.GuideID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

// UpdateStatus transitions a booking conditionally on its current status.
// Zero rows affected means the booking is missing or the status already
// moved; either way the caller must not treat the transition as applied.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3`

	result, err := r.q.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// HasOverlap reports whether the guide already has a pending or confirmed
// booking overlapping the [start, end) window.
func (r *BookingRepository) HasOverlap(ctx context.Context, guideID string, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE guide_id = $1
			  AND status IN ('pending', 'confirmed')
			  AND start_time < $3
			  AND end_time > $2
		)
	`

	var exists bool
	if err := r.q.QueryRowContext(ctx, query, guideID, start, end).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var specialRequests sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.TouristID,
		&booking.GuideID,
		&booking.POIID,
		&booking.TourDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.DurationHours,
		&booking.NumberOfPeople,
		&specialRequests,
		&booking.TotalAmount,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if specialRequests.Valid {
		booking.SpecialRequests = specialRequests.String
	}

	return &booking, nil
}
