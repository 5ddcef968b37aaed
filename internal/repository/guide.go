package repository

import (
	"context"

	"gabaylaguna/internal/domain"
)

// GuideRepository is the booking core's read-only view of the guide directory.
type GuideRepository interface {
	// GetByID retrieves a guide by ID.
	GetByID(ctx context.Context, id string) (*domain.Guide, error)
}
