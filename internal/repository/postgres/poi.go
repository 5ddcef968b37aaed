package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/repository"
)

// POIRepository is a PostgreSQL implementation of repository.POIRepository.
type POIRepository struct {
	q Querier
}

// NewPOIRepository creates a new PostgreSQL POI repository.
func NewPOIRepository(db *sql.DB) *POIRepository {
	return &POIRepository{q: db}
}

// GetByID retrieves a point of interest by ID.
func (r *POIRepository) GetByID(ctx context.Context, id string) (*domain.POI, error) {
	query := `SELECT id, name, city FROM pois WHERE id = $1`

	var poi domain.POI
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&poi.ID,
		&poi.Name,
		&poi.City,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &poi, nil
}
