package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FacilitySlug string    `gorm:"type:varchar(255);not null;index"`
	AuthorName   string    `gorm:"type:varchar(100);not null"`
	AuthorEmail  *string   `gorm:"type:varchar(255)"`
	Rating       int       `gorm:"not null"`
	Title        *string   `gorm:"type:varchar(200)"`
	Content      string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
