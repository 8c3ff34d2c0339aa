package usecases

import (
	"context"
	"errors"
	"time"

	"bedrijvengids.backend/internal/domain/entities"
	domainerrors "bedrijvengids.backend/internal/domain/errors"
	"bedrijvengids.backend/internal/domain/repositories"
	"bedrijvengids.backend/internal/infrastructure/mail"
	"bedrijvengids.backend/pkg/crypto"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ClaimUsecase handles facility ownership claims
type ClaimUsecase struct {
	claimRepo    repositories.ClaimRepository
	facilityRepo repositories.FacilityRepository
	codeRepo     repositories.VerificationCodeRepository
	uow          repositories.UnitOfWork
	mailSender   mail.Sender
	limiter      AttemptLimiter
	claimCodeTTL time.Duration
}

// NewClaimUsecase creates a new claim usecase
func NewClaimUsecase(
	claimRepo repositories.ClaimRepository,
	facilityRepo repositories.FacilityRepository,
	codeRepo repositories.VerificationCodeRepository,
	uow repositories.UnitOfWork,
	mailSender mail.Sender,
	limiter AttemptLimiter,
	claimCodeTTL time.Duration,
) *ClaimUsecase {
	return &ClaimUsecase{
		claimRepo:    claimRepo,
		facilityRepo: facilityRepo,
		codeRepo:     codeRepo,
		uow:          uow,
		mailSender:   mailSender,
		limiter:      limiter,
		claimCodeTTL: claimCodeTTL,
	}
}

// CreateClaim submits a claim and mails its verification code. The claim
// row, the code row and the email succeed or fail together.
func (u *ClaimUsecase) CreateClaim(ctx context.Context, userID uuid.UUID, input *entities.CreateClaimInput) (*entities.CreateClaimResponse, error) {
	if !entities.ValidBusinessRole(input.BusinessRole) {
		return nil, domainerrors.NewError("unknown business role", domainerrors.ErrInvalidInput)
	}

	facility, err := u.facilityRepo.GetBySlug(ctx, input.FacilitySlug)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("facility not found")
		}
		return nil, err
	}

	existing, err := u.claimRepo.GetActiveByUserAndSlug(ctx, userID, input.FacilitySlug)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("an active claim already exists for this facility")
	}

	claim := &entities.Claim{
		UserID:            userID,
		FacilitySlug:      input.FacilitySlug,
		Status:            entities.ClaimStatusPending,
		BusinessRole:      input.BusinessRole,
		ClaimantName:      input.ClaimantName,
		ClaimantPhone:     null.NewString(input.ClaimantPhone, input.ClaimantPhone != ""),
		VerificationEmail: input.VerificationEmail,
		Notes:             null.NewString(input.Notes, input.Notes != ""),
	}

	var resp *entities.CreateClaimResponse
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		// the unique index catches a concurrent claim that slipped past
		// the GetActiveByUserAndSlug check
		if err := u.claimRepo.Create(txCtx, claim); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				return domainerrors.Conflict("an active claim already exists for this facility")
			}
			return err
		}

		code, plain, err := issueCode(txCtx, u.codeRepo, issueParams{
			target:      input.VerificationEmail,
			purpose:     entities.PurposeClaim,
			ttl:         u.claimCodeTTL,
			referenceID: uuid.NullUUID{UUID: claim.ID, Valid: true},
		})
		if err != nil {
			return err
		}

		// rollback claim and code if the email cannot go out
		if err := u.mailSender.SendClaimCode(input.VerificationEmail, input.ClaimantName, facility.Name, plain, u.claimCodeTTL); err != nil {
			return domainerrors.ErrMailDispatch
		}

		resp = &entities.CreateClaimResponse{
			ClaimID:   claim.ID,
			Status:    claim.Status,
			CodeRef:   code.ID,
			ExpiresAt: code.ExpiresAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// ListClaims lists the caller's claims
func (u *ClaimUsecase) ListClaims(ctx context.Context, userID uuid.UUID) ([]*entities.Claim, error) {
	return u.claimRepo.ListByUserID(ctx, userID)
}

// GetClaim returns one of the caller's claims. Claims of other users are
// reported as not found rather than forbidden.
func (u *ClaimUsecase) GetClaim(ctx context.Context, userID, claimID uuid.UUID) (*entities.Claim, error) {
	claim, err := u.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim.UserID != userID {
		return nil, domainerrors.ErrNotFound
	}
	return claim, nil
}

// VerifyClaim confirms the emailed code and moves the claim to verified.
// Attempts are rate limited per claim, with wrong and expired codes
// charged identically.
func (u *ClaimUsecase) VerifyClaim(ctx context.Context, userID, claimID uuid.UUID, input *entities.VerifyClaimInput) (*entities.Claim, error) {
	claim, err := u.GetClaim(ctx, userID, claimID)
	if err != nil {
		return nil, err
	}
	if claim.Status != entities.ClaimStatusPending {
		return nil, domainerrors.Conflict("claim is not awaiting verification")
	}

	allowed, err := u.limiter.Allow(ctx, claimID.String())
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domainerrors.ErrTooManyAttempts
	}

	code, err := u.codeRepo.GetActiveByReference(ctx, claimID, entities.PurposeClaim)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCode
		}
		return nil, err
	}
	if code.Expired(time.Now()) {
		return nil, domainerrors.ErrCodeExpired
	}
	if !crypto.VerifyCode(input.Code, code.CodeHash) {
		return nil, domainerrors.ErrInvalidCode
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.codeRepo.MarkConsumed(txCtx, code.ID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.ErrCodeConsumed
			}
			return err
		}
		return u.claimRepo.UpdateStatus(txCtx, claim.ID, entities.ClaimStatusVerified)
	})
	if err != nil {
		return nil, err
	}

	if err := u.limiter.Reset(ctx, claimID.String()); err != nil {
		return nil, err
	}

	claim.Status = entities.ClaimStatusVerified
	return claim, nil
}

// UpdateClaimStatus moves a claim to a moderation decision (admin only,
// enforced at the transport layer)
func (u *ClaimUsecase) UpdateClaimStatus(ctx context.Context, claimID uuid.UUID, status entities.ClaimStatus) (*entities.Claim, error) {
	switch status {
	case entities.ClaimStatusApproved, entities.ClaimStatusRejected:
	default:
		return nil, domainerrors.NewError("status must be approved or rejected", domainerrors.ErrInvalidInput)
	}

	claim, err := u.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim.Status != entities.ClaimStatusVerified {
		return nil, domainerrors.Conflict("only verified claims can be decided")
	}

	if err := u.claimRepo.UpdateStatus(ctx, claimID, status); err != nil {
		return nil, err
	}
	claim.Status = status
	return claim, nil
}
