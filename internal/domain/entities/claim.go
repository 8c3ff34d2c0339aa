package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BusinessRole represents the claimant's relation to the business
type BusinessRole string

const (
	BusinessRoleOwner    BusinessRole = "owner"
	BusinessRoleManager  BusinessRole = "manager"
	BusinessRoleEmployee BusinessRole = "employee"
	BusinessRoleOther    BusinessRole = "other"
)

// ValidBusinessRole reports whether the role is one of the enumerated set
func ValidBusinessRole(role BusinessRole) bool {
	switch role {
	case BusinessRoleOwner, BusinessRoleManager, BusinessRoleEmployee, BusinessRoleOther:
		return true
	}
	return false
}

// ClaimStatus represents the claim lifecycle
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusVerified ClaimStatus = "verified"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
)

// ActiveClaimStatus reports whether a claim in this status blocks a new
// claim for the same (user, facility) pair. Rejected claims may be resubmitted.
func ActiveClaimStatus(status ClaimStatus) bool {
	return status == ClaimStatusPending || status == ClaimStatusVerified
}

// Claim represents a user's assertion of ownership over a facility listing
type Claim struct {
	ID                uuid.UUID    `json:"id"`
	UserID            uuid.UUID    `json:"userId"`
	FacilitySlug      string       `json:"facilitySlug"`
	Status            ClaimStatus  `json:"status"`
	BusinessRole      BusinessRole `json:"businessRole"`
	ClaimantName      string       `json:"claimantName"`
	ClaimantPhone     null.String  `json:"claimantPhone,omitempty"`
	VerificationEmail string       `json:"verificationEmail"`
	Notes             null.String  `json:"notes,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
	DeletedAt         null.Time    `json:"-"`
}

// CreateClaimInput represents input for submitting a claim
type CreateClaimInput struct {
	FacilitySlug      string       `json:"facilitySlug" binding:"required"`
	BusinessRole      BusinessRole `json:"businessRole" binding:"required"`
	ClaimantName      string       `json:"claimantName" binding:"required,min=2,max=100"`
	ClaimantPhone     string       `json:"claimantPhone,omitempty"`
	VerificationEmail string       `json:"verificationEmail" binding:"required,email"`
	Notes             string       `json:"notes,omitempty"`
}

// VerifyClaimInput represents input for confirming a claim code
type VerifyClaimInput struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

// CreateClaimResponse is returned after a claim is created and its code mailed
type CreateClaimResponse struct {
	ClaimID   uuid.UUID   `json:"claimId"`
	Status    ClaimStatus `json:"status"`
	CodeRef   uuid.UUID   `json:"codeRef"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
