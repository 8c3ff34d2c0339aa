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

// VerificationCodeRepository implements one-time-code storage
type VerificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository creates a new verification code repository
func NewVerificationCodeRepository(db *gorm.DB) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: db}
}

// Create persists a new code row
func (r *VerificationCodeRepository) Create(ctx context.Context, code *entities.VerificationCode) error {
	if code.ID == uuid.Nil {
		code.ID = utils.GenerateUUIDv7()
	}
	m := &models.VerificationCode{
		ID:        code.ID,
		Target:    code.Target,
		Purpose:   string(code.Purpose),
		CodeHash:  code.CodeHash,
		ExpiresAt: code.ExpiresAt,
	}
	if code.Name.Valid {
		m.Name = &code.Name.String
	}
	if code.SecretHash.Valid {
		m.SecretHash = &code.SecretHash.String
	}
	if code.ReferenceID.Valid {
		ref := code.ReferenceID.UUID
		m.ReferenceID = &ref
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	code.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a code row by its ID (the client-facing codeRef)
func (r *VerificationCodeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationCode, error) {
	var m models.VerificationCode
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return codeToEntity(&m), nil
}

// GetActiveByReference gets the newest unconsumed code bound to a
// reference (claim) ID for the given purpose.
func (r *VerificationCodeRepository) GetActiveByReference(ctx context.Context, referenceID uuid.UUID, purpose entities.CodePurpose) (*entities.VerificationCode, error) {
	var m models.VerificationCode
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("reference_id = ? AND purpose = ? AND consumed_at IS NULL", referenceID, string(purpose)).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return codeToEntity(&m), nil
}

// InvalidateActive soft-deletes all unconsumed codes for a (target,
// purpose) pair. Called before every issuance so a reissued code is the
// only one that can still verify.
func (r *VerificationCodeRepository) InvalidateActive(ctx context.Context, target string, purpose entities.CodePurpose) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Where("target = ? AND purpose = ? AND consumed_at IS NULL", target, string(purpose)).
		Delete(&models.VerificationCode{}).Error
}

// MarkConsumed marks a code as consumed exactly once. A second call for
// the same ID reports ErrNotFound because the guard no longer matches.
func (r *VerificationCodeRepository) MarkConsumed(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.VerificationCode{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Update("consumed_at", time.Now())

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteExpired removes expired unconsumed codes in batches
func (r *VerificationCodeRepository) DeleteExpired(ctx context.Context, before time.Time, limit int) (int64, error) {
	var ids []uuid.UUID
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.VerificationCode{}).
		Where("expires_at < ? AND consumed_at IS NULL", before).
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Where("id IN ?", ids).Delete(&models.VerificationCode{})
	return result.RowsAffected, result.Error
}

func codeToEntity(m *models.VerificationCode) *entities.VerificationCode {
	e := &entities.VerificationCode{
		ID:        m.ID,
		Target:    m.Target,
		Purpose:   entities.CodePurpose(m.Purpose),
		CodeHash:  m.CodeHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
	e.Name = null.StringFromPtr(m.Name)
	e.SecretHash = null.StringFromPtr(m.SecretHash)
	e.ConsumedAt = null.TimeFromPtr(m.ConsumedAt)
	if m.ReferenceID != nil {
		e.ReferenceID = uuid.NullUUID{UUID: *m.ReferenceID, Valid: true}
	}
	return e
}
