package repositories

import (
	"context"
	"errors"

	"bedrijvengids.backend/internal/domain/entities"
	domainerrors "bedrijvengids.backend/internal/domain/errors"
	"bedrijvengids.backend/internal/infrastructure/models"
	"gorm.io/gorm"
)

// FacilityRepository implements read access to directory listings
type FacilityRepository struct {
	db *gorm.DB
}

// NewFacilityRepository creates a new facility repository
func NewFacilityRepository(db *gorm.DB) *FacilityRepository {
	return &FacilityRepository{db: db}
}

// GetBySlug gets a facility by its unique slug
func (r *FacilityRepository) GetBySlug(ctx context.Context, slug string) (*entities.Facility, error) {
	var m models.Facility
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return facilityToEntity(&m), nil
}

// List lists facilities matching the filter with pagination
func (r *FacilityRepository) List(ctx context.Context, filter entities.FacilityFilter, limit, offset int) ([]*entities.Facility, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Facility{})

	if filter.Search != "" {
		searchTerm := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR city LIKE ?", searchTerm, searchTerm)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var facilityModels []models.Facility
	if err := query.Find(&facilityModels).Error; err != nil {
		return nil, 0, err
	}

	facilities := make([]*entities.Facility, 0, len(facilityModels))
	for i := range facilityModels {
		facilities = append(facilities, facilityToEntity(&facilityModels[i]))
	}
	return facilities, total, nil
}

func facilityToEntity(m *models.Facility) *entities.Facility {
	return &entities.Facility{
		ID:        m.ID,
		Slug:      m.Slug,
		Name:      m.Name,
		Category:  m.Category,
		City:      m.City,
		County:    m.County,
		State:     m.State,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
