package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ReviewStatus represents the moderation state of a submitted review
type ReviewStatus string

const (
	ReviewStatusPending   ReviewStatus = "pending"
	ReviewStatusPublished ReviewStatus = "published"
	ReviewStatusRejected  ReviewStatus = "rejected"
)

// Review represents a user-submitted review awaiting or past moderation
type Review struct {
	ID           uuid.UUID    `json:"id"`
	FacilitySlug string       `json:"facilitySlug"`
	AuthorName   string       `json:"authorName"`
	AuthorEmail  null.String  `json:"authorEmail,omitempty"`
	Rating       int          `json:"rating"`
	Title        null.String  `json:"title,omitempty"`
	Content      string       `json:"content"`
	Status       ReviewStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// EmbeddedReview represents a third-party review attached to a facility at
// ingestion time. Read-only; never written back into the review store.
type EmbeddedReview struct {
	ID           uuid.UUID `json:"id"`
	FacilitySlug string    `json:"facilitySlug"`
	AuthorName   string    `json:"authorName"`
	Rating       int       `json:"rating"`
	Content      string    `json:"content"`
	Source       string    `json:"source"`
	ReviewedAt   time.Time `json:"reviewedAt"`
}

// SubmitReviewInput represents input for submitting a review
type SubmitReviewInput struct {
	FacilitySlug string `json:"facilitySlug" binding:"required"`
	AuthorName   string `json:"authorName" binding:"required,min=2,max=100"`
	AuthorEmail  string `json:"authorEmail,omitempty" binding:"omitempty,email"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Title        string `json:"title,omitempty" binding:"omitempty,max=200"`
	Content      string `json:"content" binding:"required,min=20"`
}

// ReviewStats holds the combined rating aggregate for display
type ReviewStats struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"averageRating"`
}

// FacilityReviews is the merged read model for a facility's review page
type FacilityReviews struct {
	Reviews  []*Review         `json:"reviews"`
	Embedded []*EmbeddedReview `json:"embedded"`
	Stats    ReviewStats       `json:"stats"`
}
