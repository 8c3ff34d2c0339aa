package repositories

import (
	"context"
	"time"

	"bedrijvengids.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// VerificationCodeRepository defines one-time-code storage operations
type VerificationCodeRepository interface {
	Create(ctx context.Context, code *entities.VerificationCode) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationCode, error)
	GetActiveByReference(ctx context.Context, referenceID uuid.UUID, purpose entities.CodePurpose) (*entities.VerificationCode, error)
	// InvalidateActive soft-deletes all unconsumed codes for the
	// (target, purpose) pair so only the newest issuance can verify.
	InvalidateActive(ctx context.Context, target string, purpose entities.CodePurpose) error
	MarkConsumed(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int64, error)
}
