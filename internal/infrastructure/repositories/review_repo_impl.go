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

// ReviewRepository implements review data operations
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create creates a new review (status pending until moderated)
func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	if review.ID == uuid.Nil {
		review.ID = utils.GenerateUUIDv7()
	}
	m := &models.Review{
		ID:           review.ID,
		FacilitySlug: review.FacilitySlug,
		AuthorName:   review.AuthorName,
		Rating:       review.Rating,
		Content:      review.Content,
		Status:       string(review.Status),
	}
	if review.AuthorEmail.Valid {
		m.AuthorEmail = &review.AuthorEmail.String
	}
	if review.Title.Valid {
		m.Title = &review.Title.String
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	review.CreatedAt = m.CreatedAt
	review.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Review, error) {
	var m models.Review
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return reviewToEntity(&m), nil
}

// ListPublishedBySlug lists published reviews for a facility, newest first
func (r *ReviewRepository) ListPublishedBySlug(ctx context.Context, slug string) ([]*entities.Review, error) {
	var reviewModels []models.Review
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("facility_slug = ? AND status = ?", slug, string(entities.ReviewStatusPublished)).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*entities.Review, 0, len(reviewModels))
	for i := range reviewModels {
		reviews = append(reviews, reviewToEntity(&reviewModels[i]))
	}
	return reviews, nil
}

// UpdateStatus updates a review's moderation status
func (r *ReviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ReviewStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Review{}).
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

func reviewToEntity(m *models.Review) *entities.Review {
	return &entities.Review{
		ID:           m.ID,
		FacilitySlug: m.FacilitySlug,
		AuthorName:   m.AuthorName,
		AuthorEmail:  null.StringFromPtr(m.AuthorEmail),
		Rating:       m.Rating,
		Title:        null.StringFromPtr(m.Title),
		Content:      m.Content,
		Status:       entities.ReviewStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// EmbeddedReviewRepository reads ingestion-time third-party reviews
type EmbeddedReviewRepository struct {
	db *gorm.DB
}

// NewEmbeddedReviewRepository creates a new embedded review repository
func NewEmbeddedReviewRepository(db *gorm.DB) *EmbeddedReviewRepository {
	return &EmbeddedReviewRepository{db: db}
}

// ListBySlug lists embedded reviews for a facility
func (r *EmbeddedReviewRepository) ListBySlug(ctx context.Context, slug string) ([]*entities.EmbeddedReview, error) {
	var embeddedModels []models.EmbeddedReview
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("facility_slug = ?", slug).
		Order("reviewed_at DESC").
		Find(&embeddedModels).Error
	if err != nil {
		return nil, err
	}

	embedded := make([]*entities.EmbeddedReview, 0, len(embeddedModels))
	for i := range embeddedModels {
		m := embeddedModels[i]
		embedded = append(embedded, &entities.EmbeddedReview{
			ID:           m.ID,
			FacilitySlug: m.FacilitySlug,
			AuthorName:   m.AuthorName,
			Rating:       m.Rating,
			Content:      m.Content,
			Source:       m.Source,
			ReviewedAt:   m.ReviewedAt,
		})
	}
	return embedded, nil
}
