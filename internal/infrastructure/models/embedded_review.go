package models

import (
	"time"

	"github.com/google/uuid"
)

// EmbeddedReview rows are written by the ingestion pipeline, never by
// this service.
type EmbeddedReview struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FacilitySlug string    `gorm:"type:varchar(255);not null;index"`
	AuthorName   string    `gorm:"type:varchar(100);not null"`
	Rating       int       `gorm:"not null"`
	Content      string    `gorm:"type:text;not null"`
	Source       string    `gorm:"type:varchar(100)"`
	ReviewedAt   time.Time
}
