package repositories

import (
	"context"
	"errors"

	"bedrijvengids.backend/internal/domain/entities"
	domainerrors "bedrijvengids.backend/internal/domain/errors"
	"bedrijvengids.backend/internal/infrastructure/models"
	"bedrijvengids.backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// FavoriteRepository implements favorite data operations
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create inserts a favorite. The (user_id, facility_slug) unique index
// is the authority on duplicates; concurrent double-inserts surface as
// ErrAlreadyExists for the caller to resolve.
func (r *FavoriteRepository) Create(ctx context.Context, favorite *entities.Favorite) error {
	if favorite.ID == uuid.Nil {
		favorite.ID = utils.GenerateUUIDv7()
	}
	m := &models.Favorite{
		ID:           favorite.ID,
		UserID:       favorite.UserID,
		FacilitySlug: favorite.FacilitySlug,
	}
	if favorite.FacilityName.Valid {
		m.FacilityName = &favorite.FacilityName.String
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	favorite.CreatedAt = m.CreatedAt
	return nil
}

// GetByUserAndSlug gets a favorite for the pair
func (r *FavoriteRepository) GetByUserAndSlug(ctx context.Context, userID uuid.UUID, slug string) (*entities.Favorite, error) {
	var m models.Favorite
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND facility_slug = ?", userID, slug).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return favoriteToEntity(&m), nil
}

// ListByUserID lists a user's favorites, newest first
func (r *FavoriteRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Favorite, error) {
	var favoriteModels []models.Favorite
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error
	if err != nil {
		return nil, err
	}

	favorites := make([]*entities.Favorite, 0, len(favoriteModels))
	for i := range favoriteModels {
		favorites = append(favorites, favoriteToEntity(&favoriteModels[i]))
	}
	return favorites, nil
}

// DeleteByUserAndSlug removes a favorite. Zero rows affected is not an
// error; optimistic UIs double-fire removals.
func (r *FavoriteRepository) DeleteByUserAndSlug(ctx context.Context, userID uuid.UUID, slug string) (int64, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND facility_slug = ?", userID, slug).
		Delete(&models.Favorite{})
	return result.RowsAffected, result.Error
}

func favoriteToEntity(m *models.Favorite) *entities.Favorite {
	return &entities.Favorite{
		ID:           m.ID,
		UserID:       m.UserID,
		FacilitySlug: m.FacilitySlug,
		FacilityName: null.StringFromPtr(m.FacilityName),
		CreatedAt:    m.CreatedAt,
	}
}
