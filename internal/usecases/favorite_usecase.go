package usecases

import (
	"context"
	"errors"

	"bedrijvengids.backend/internal/domain/entities"
	domainerrors "bedrijvengids.backend/internal/domain/errors"
	"bedrijvengids.backend/internal/domain/repositories"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// FavoriteUsecase handles saved facilities. Both add and remove are
// idempotent so optimistic UI toggles can fire twice without errors.
type FavoriteUsecase struct {
	favoriteRepo repositories.FavoriteRepository
	facilityRepo repositories.FacilityRepository
}

// NewFavoriteUsecase creates a new favorite usecase
func NewFavoriteUsecase(
	favoriteRepo repositories.FavoriteRepository,
	facilityRepo repositories.FacilityRepository,
) *FavoriteUsecase {
	return &FavoriteUsecase{
		favoriteRepo: favoriteRepo,
		facilityRepo: facilityRepo,
	}
}

// AddFavorite saves a facility for the user. Adding an existing favorite
// returns the stored row unchanged.
func (u *FavoriteUsecase) AddFavorite(ctx context.Context, userID uuid.UUID, input *entities.AddFavoriteInput) (*entities.Favorite, error) {
	name := input.Name
	if name == "" {
		facility, err := u.facilityRepo.GetBySlug(ctx, input.Slug)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.NotFound("facility not found")
			}
			return nil, err
		}
		name = facility.Name
	}

	favorite := &entities.Favorite{
		UserID:       userID,
		FacilitySlug: input.Slug,
		FacilityName: null.NewString(name, name != ""),
	}
	err := u.favoriteRepo.Create(ctx, favorite)
	if err == nil {
		return favorite, nil
	}
	if !errors.Is(err, domainerrors.ErrAlreadyExists) {
		return nil, err
	}

	// lost the race or double-fired: the stored row wins
	return u.favoriteRepo.GetByUserAndSlug(ctx, userID, input.Slug)
}

// RemoveFavorite deletes a saved facility. Removing one that is not saved
// is a no-op.
func (u *FavoriteUsecase) RemoveFavorite(ctx context.Context, userID uuid.UUID, slug string) error {
	_, err := u.favoriteRepo.DeleteByUserAndSlug(ctx, userID, slug)
	return err
}

// ListFavorites lists the user's saved facilities, newest first
func (u *FavoriteUsecase) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entities.Favorite, error) {
	return u.favoriteRepo.ListByUserID(ctx, userID)
}
