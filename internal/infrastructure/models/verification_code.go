package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationCode stores the SHA-256 digest of an issued one-time code.
// Name and SecretHash carry the pending registration context so the user
// row can be created at confirmation time; ReferenceID links claim codes
// to their claim.
type VerificationCode struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Target      string     `gorm:"type:varchar(255);not null;index:idx_codes_target_purpose"`
	Purpose     string     `gorm:"type:varchar(50);not null;index:idx_codes_target_purpose"`
	CodeHash    string     `gorm:"type:varchar(64);not null"`
	Name        *string    `gorm:"type:varchar(100)"`
	SecretHash  *string    `gorm:"type:varchar(255)"`
	ReferenceID *uuid.UUID `gorm:"type:uuid;index"`
	ExpiresAt   time.Time  `gorm:"not null;index"`
	ConsumedAt  *time.Time
	CreatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
