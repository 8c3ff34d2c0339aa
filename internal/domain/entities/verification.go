package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CodePurpose represents what a verification code proves control of
type CodePurpose string

const (
	PurposeRegister CodePurpose = "register"
	PurposeClaim    CodePurpose = "claim"
)

// VerificationCode represents a stored one-time code. Only the SHA-256 hash
// of the 6-digit code is persisted; the plaintext exists in the outbound
// email alone. The row ID doubles as the opaque codeRef echoed by clients.
type VerificationCode struct {
	ID          uuid.UUID     `json:"id"`
	Target      string        `json:"target"`
	Purpose     CodePurpose   `json:"purpose"`
	CodeHash    string        `json:"-"`
	Name        null.String   `json:"-"`
	SecretHash  null.String   `json:"-"`
	ReferenceID uuid.NullUUID `json:"-"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	ConsumedAt  null.Time     `json:"-"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Consumed reports whether the code was already used
func (v *VerificationCode) Consumed() bool {
	return v.ConsumedAt.Valid
}

// Expired reports whether the code is past its TTL at the given instant
func (v *VerificationCode) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}

// IssuedCode is the caller-visible result of issuing a code
type IssuedCode struct {
	CodeRef   uuid.UUID `json:"codeRef"`
	ExpiresAt time.Time `json:"expiresAt"`
}
