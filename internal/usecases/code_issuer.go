package usecases

import (
	"context"
	"time"

	"bedrijvengids.backend/internal/domain/entities"
	"bedrijvengids.backend/internal/domain/repositories"
	"bedrijvengids.backend/pkg/crypto"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AttemptLimiter throttles verification attempts per target key
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// issueParams carries the context-specific fields of a code issuance
type issueParams struct {
	target      string
	purpose     entities.CodePurpose
	ttl         time.Duration
	name        null.String
	secretHash  null.String
	referenceID uuid.NullUUID
}

// issueCode invalidates earlier unconsumed codes for the (target, purpose)
// pair and persists a fresh one. It returns the stored row and the
// plaintext code; the plaintext must only be placed in the outbound email.
func issueCode(ctx context.Context, repo repositories.VerificationCodeRepository, p issueParams) (*entities.VerificationCode, string, error) {
	if err := repo.InvalidateActive(ctx, p.target, p.purpose); err != nil {
		return nil, "", err
	}

	plain, err := crypto.GenerateCode()
	if err != nil {
		return nil, "", err
	}

	code := &entities.VerificationCode{
		Target:      p.target,
		Purpose:     p.purpose,
		CodeHash:    crypto.HashCode(plain),
		Name:        p.name,
		SecretHash:  p.secretHash,
		ReferenceID: p.referenceID,
		ExpiresAt:   time.Now().Add(p.ttl),
	}
	if err := repo.Create(ctx, code); err != nil {
		return nil, "", err
	}

	return code, plain, nil
}
