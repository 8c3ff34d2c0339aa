package repositories

import (
	"context"

	"bedrijvengids.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// ReviewRepository defines review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Review, error)
	ListPublishedBySlug(ctx context.Context, slug string) ([]*entities.Review, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ReviewStatus) error
}

// EmbeddedReviewRepository reads third-party reviews attached to facilities
// at ingestion time. There are deliberately no write operations.
type EmbeddedReviewRepository interface {
	ListBySlug(ctx context.Context, slug string) ([]*entities.EmbeddedReview, error)
}
