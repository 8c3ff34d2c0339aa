package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Favorite represents a facility saved by a user. Unique per
// (UserID, FacilitySlug) at the storage layer.
type Favorite struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"userId"`
	FacilitySlug string      `json:"facilitySlug"`
	FacilityName null.String `json:"facilityName,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// AddFavoriteInput represents input for saving a facility
type AddFavoriteInput struct {
	Slug string `json:"slug" binding:"required"`
	Name string `json:"name,omitempty"`
}
