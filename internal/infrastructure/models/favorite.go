package models

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_slug"`
	FacilitySlug string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_favorites_user_slug"`
	FacilityName *string   `gorm:"type:varchar(255)"`
	CreatedAt    time.Time

	// Associations
	User User `gorm:"foreignKey:UserID"`
}
