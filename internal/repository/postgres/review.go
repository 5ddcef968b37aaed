package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/repository"
)

// ReviewRepository is a PostgreSQL implementation of repository.ReviewRepository.
type ReviewRepository struct {
	q Querier
}

// NewReviewRepository creates a new PostgreSQL review repository.
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{q: db}
}

// Create persists a new review. A unique constraint on booking_id rejects
// a second review for the same booking.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (id, booking_id, guide_id, tourist_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var comment sql.NullString
	if review.Comment != "" {
		comment = sql.NullString{String: review.Comment, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		review.ID,
		review.BookingID,
		review.GuideID,
		review.TouristID,
		review.Rating,
		comment,
		review.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}

	return nil
}

// GetByBookingID retrieves the review for a booking.
// Returns nil without error when the booking has no review.
func (r *ReviewRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Review, error) {
	query := `
		SELECT id, booking_id, guide_id, tourist_id, rating, comment, created_at
		FROM reviews WHERE booking_id = $1
	`

	review, err := scanReview(r.q.QueryRowContext(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return review, nil
}

// ListByGuide retrieves all reviews for a guide, newest first.
func (r *ReviewRepository) ListByGuide(ctx context.Context, guideID string) ([]*domain.Review, error) {
	query := `
		SELECT id, booking_id, guide_id, tourist_id, rating, comment, created_at
		FROM reviews WHERE guide_id = $1 ORDER BY created_at DESC
	`

	rows, err := r.q.QueryContext(ctx, query, guideID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// AverageForGuide returns the mean rating across the guide's reviews,
// or 0 when the guide has none.
func (r *ReviewRepository) AverageForGuide(ctx context.Context, guideID string) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE guide_id = $1`

	var avg float64
	if err := r.q.QueryRowContext(ctx, query, guideID).Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var review domain.Review
	var comment sql.NullString

	err := row.Scan(
		&review.ID,
		&review.BookingID,
		&review.GuideID,
		&review.TouristID,
		&review.Rating,
		&comment,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if comment.Valid {
		review.Comment = comment.String
	}

	return &review, nil
}
