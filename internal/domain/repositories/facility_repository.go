package repositories

import (
	"context"

	"bedrijvengids.backend/internal/domain/entities"
)

// FacilityRepository defines read operations over directory listings.
// Facilities are ingested by a separate pipeline; this service never
// writes them.
type FacilityRepository interface {
	GetBySlug(ctx context.Context, slug string) (*entities.Facility, error)
	List(ctx context.Context, filter entities.FacilityFilter, limit, offset int) ([]*entities.Facility, int64, error)
}
