package usecases

import (
	"context"
	"errors"
	"math"

	"bedrijvengids.backend/internal/domain/entities"
	domainerrors "bedrijvengids.backend/internal/domain/errors"
	"bedrijvengids.backend/internal/domain/repositories"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ReviewUsecase handles review submission, moderation and the merged
// read model combining on-site reviews with ingested third-party ones.
type ReviewUsecase struct {
	reviewRepo   repositories.ReviewRepository
	embeddedRepo repositories.EmbeddedReviewRepository
	facilityRepo repositories.FacilityRepository
}

// NewReviewUsecase creates a new review usecase
func NewReviewUsecase(
	reviewRepo repositories.ReviewRepository,
	embeddedRepo repositories.EmbeddedReviewRepository,
	facilityRepo repositories.FacilityRepository,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:   reviewRepo,
		embeddedRepo: embeddedRepo,
		facilityRepo: facilityRepo,
	}
}

// SubmitReview stores a review in pending state for moderation
func (u *ReviewUsecase) SubmitReview(ctx context.Context, input *entities.SubmitReviewInput) (*entities.Review, error) {
	if _, err := u.facilityRepo.GetBySlug(ctx, input.FacilitySlug); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("facility not found")
		}
		return nil, err
	}

	review := &entities.Review{
		FacilitySlug: input.FacilitySlug,
		AuthorName:   input.AuthorName,
		AuthorEmail:  null.NewString(input.AuthorEmail, input.AuthorEmail != ""),
		Rating:       input.Rating,
		Title:        null.NewString(input.Title, input.Title != ""),
		Content:      input.Content,
		Status:       entities.ReviewStatusPending,
	}
	if err := u.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// GetFacilityReviews returns the merged review page for a facility:
// published on-site reviews, ingested third-party reviews and the
// combined rating aggregate.
func (u *ReviewUsecase) GetFacilityReviews(ctx context.Context, slug string) (*entities.FacilityReviews, error) {
	if _, err := u.facilityRepo.GetBySlug(ctx, slug); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("facility not found")
		}
		return nil, err
	}

	reviews, err := u.reviewRepo.ListPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	embedded, err := u.embeddedRepo.ListBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &entities.FacilityReviews{
		Reviews:  reviews,
		Embedded: embedded,
		Stats:    MergeReviewStats(reviews, embedded),
	}, nil
}

// UpdateReviewStatus publishes or rejects a pending review (admin only,
// enforced at the transport layer)
func (u *ReviewUsecase) UpdateReviewStatus(ctx context.Context, reviewID uuid.UUID, status entities.ReviewStatus) (*entities.Review, error) {
	switch status {
	case entities.ReviewStatusPublished, entities.ReviewStatusRejected:
	default:
		return nil, domainerrors.NewError("status must be published or rejected", domainerrors.ErrInvalidInput)
	}

	review, err := u.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if err := u.reviewRepo.UpdateStatus(ctx, reviewID, status); err != nil {
		return nil, err
	}
	review.Status = status
	return review, nil
}

// MergeReviewStats computes the combined count and average over on-site
// and third-party reviews. The average is rounded to one decimal.
func MergeReviewStats(reviews []*entities.Review, embedded []*entities.EmbeddedReview) entities.ReviewStats {
	count := len(reviews) + len(embedded)
	if count == 0 {
		return entities.ReviewStats{}
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	for _, e := range embedded {
		sum += e.Rating
	}

	avg := math.Round(float64(sum)/float64(count)*10) / 10
	return entities.ReviewStats{
		Count:         count,
		AverageRating: avg,
	}
}
