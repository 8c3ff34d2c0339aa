package repositories

import (
	"context"

	"bedrijvengids.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// ClaimRepository defines claim data operations
type ClaimRepository interface {
	Create(ctx context.Context, claim *entities.Claim) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Claim, error)
	GetActiveByUserAndSlug(ctx context.Context, userID uuid.UUID, slug string) (*entities.Claim, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Claim, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ClaimStatus) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
