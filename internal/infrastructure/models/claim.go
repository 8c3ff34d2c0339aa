package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// A partial unique index idx_claims_active_user_slug on
// (user_id, facility_slug) WHERE status IN ('pending','verified') AND
// deleted_at IS NULL guards against concurrent duplicate claims; gorm
// tags cannot express the predicate, so the schema DDL carries it.
type Claim struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index:idx_claims_user_slug"`
	FacilitySlug      string    `gorm:"type:varchar(255);not null;index:idx_claims_user_slug"`
	Status            string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	BusinessRole      string    `gorm:"type:varchar(50);not null"`
	ClaimantName      string    `gorm:"type:varchar(100);not null"`
	ClaimantPhone     *string   `gorm:"type:varchar(50)"`
	VerificationEmail string    `gorm:"type:varchar(255);not null"`
	Notes             *string   `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`

	// Associations
	User User `gorm:"foreignKey:UserID"`
}
