package repository

import (
	"context"

	"gabaylaguna/internal/domain"
)

// POIRepository is the booking core's read-only view of the catalog.
type POIRepository interface {
	// GetByID retrieves a point of interest by ID.
	GetByID(ctx context.Context, id string) (*domain.POI, error)
}
