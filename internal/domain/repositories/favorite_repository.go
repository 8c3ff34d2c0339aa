package repositories

import (
	"context"

	"bedrijvengids.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// FavoriteRepository defines favorite data operations
type FavoriteRepository interface {
	// Create inserts a favorite; a duplicate (userID, slug) insert
	// returns domainerrors.ErrAlreadyExists.
	Create(ctx context.Context, favorite *entities.Favorite) error
	GetByUserAndSlug(ctx context.Context, userID uuid.UUID, slug string) (*entities.Favorite, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Favorite, error)
	// DeleteByUserAndSlug removes a favorite; deleting a missing row is
	// not an error and reports zero rows affected.
	DeleteByUserAndSlug(ctx context.Context, userID uuid.UUID, slug string) (int64, error)
}
