package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/repository"
)

// GuideRepository is a PostgreSQL implementation of repository.GuideRepository.
type GuideRepository struct {
	q Querier
}

// NewGuideRepository creates a new PostgreSQL guide repository.
func NewGuideRepository(db *sql.DB) *GuideRepository {
	return &GuideRepository{q: db}
}

// GetByID retrieves a guide by ID.
func (r *GuideRepository) GetByID(ctx context.Context, id string) (*domain.Guide, error) {
	query := `SELECT id, name, hourly_rate, city FROM guides WHERE id = $1`

	var guide domain.Guide
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&guide.ID,
		&guide.Name,
		&guide.HourlyRate,
		&guide.City,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &guide, nil
}
