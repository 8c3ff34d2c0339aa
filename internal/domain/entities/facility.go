package entities

import (
	"time"

	"github.com/google/uuid"
)

// Facility represents a directory listing identified by a unique slug.
// Facilities are ingested outside this service and are read-only here.
type Facility struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	City      string    `json:"city"`
	County    string    `json:"county"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FacilityFilter holds optional search filters for listing facilities
type FacilityFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	City     string `form:"city"`
	State    string `form:"state"`
}
