package repositories

import (
	"context"
	"errors"
	"time"

	"bedrijvengids.backend/internal/domain/entities"
	domainerrors "bedrijvengids.backend/internal/domain/errors"
	"bedrijvengids.backend/internal/infrastructure/models"
	"bedrijvengids.backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// ClaimRepository implements claim data operations
type ClaimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Create creates a new claim
func (r *ClaimRepository) Create(ctx context.Context, claim *entities.Claim) error {
	if claim.ID == uuid.Nil {
		claim.ID = utils.GenerateUUIDv7()
	}
	m := &models.Claim{
		ID:                claim.ID,
		UserID:            claim.UserID,
		FacilitySlug:      claim.FacilitySlug,
		Status:            string(claim.Status),
		BusinessRole:      string(claim.BusinessRole),
		ClaimantName:      claim.ClaimantName,
		VerificationEmail: claim.VerificationEmail,
	}
	if claim.ClaimantPhone.Valid {
		m.ClaimantPhone = &claim.ClaimantPhone.String
	}
	if claim.Notes.Valid {
		m.Notes = &claim.Notes.String
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	claim.CreatedAt = m.CreatedAt
	claim.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a claim by ID
func (r *ClaimRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Claim, error) {
	var m models.Claim
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return claimToEntity(&m), nil
}

// GetActiveByUserAndSlug gets a pending or verified claim for the pair,
// if one exists. Rejected and approved claims do not block resubmission
// checks and are not returned.
func (r *ClaimRepository) GetActiveByUserAndSlug(ctx context.Context, userID uuid.UUID, slug string) (*entities.Claim, error) {
	var m models.Claim
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND facility_slug = ? AND status IN ?",
			userID, slug, []string{string(entities.ClaimStatusPending), string(entities.ClaimStatusVerified)}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return claimToEntity(&m), nil
}

// ListByUserID lists a user's claims, newest first
func (r *ClaimRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Claim, error) {
	var claimModels []models.Claim
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&claimModels).Error
	if err != nil {
		return nil, err
	}

	claims := make([]*entities.Claim, 0, len(claimModels))
	for i := range claimModels {
		claims = append(claims, claimToEntity(&claimModels[i]))
	}
	return claims, nil
}

// UpdateStatus updates a claim's status
func (r *ClaimRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ClaimStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Claim{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a claim
func (r *ClaimRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Claim{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func claimToEntity(m *models.Claim) *entities.Claim {
	return &entities.Claim{
		ID:                m.ID,
		UserID:            m.UserID,
		FacilitySlug:      m.FacilitySlug,
		Status:            entities.ClaimStatus(m.Status),
		BusinessRole:      entities.BusinessRole(m.BusinessRole),
		ClaimantName:      m.ClaimantName,
		ClaimantPhone:     null.StringFromPtr(m.ClaimantPhone),
		VerificationEmail: m.VerificationEmail,
		Notes:             null.StringFromPtr(m.Notes),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
