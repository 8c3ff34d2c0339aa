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
	"bedrijvengids.backend/pkg/jwt"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AuthUsecase handles registration and authentication business logic.
// Registration is two-phase: Register only issues a code, the account
// row is created when VerifyRegistration confirms it.
type AuthUsecase struct {
	userRepo        repositories.UserRepository
	codeRepo        repositories.VerificationCodeRepository
	uow             repositories.UnitOfWork
	mailSender      mail.Sender
	jwtService      *jwt.JWTService
	limiter         AttemptLimiter
	registerCodeTTL time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	codeRepo repositories.VerificationCodeRepository,
	uow repositories.UnitOfWork,
	mailSender mail.Sender,
	jwtService *jwt.JWTService,
	limiter AttemptLimiter,
	registerCodeTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:        userRepo,
		codeRepo:        codeRepo,
		uow:             uow,
		mailSender:      mailSender,
		jwtService:      jwtService,
		limiter:         limiter,
		registerCodeTTL: registerCodeTTL,
	}
}

// Register starts a registration by mailing a verification code. No user
// row is created yet; the pending name and password hash travel on the
// code row until confirmation.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.IssuedCode, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	var issued *entities.IssuedCode
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		code, plain, err := issueCode(txCtx, u.codeRepo, issueParams{
			target:     input.Email,
			purpose:    entities.PurposeRegister,
			ttl:        u.registerCodeTTL,
			name:       null.StringFrom(input.Name),
			secretHash: null.StringFrom(passwordHash),
		})
		if err != nil {
			return err
		}

		// a failed send rolls the code row back with it
		if err := u.mailSender.SendRegistrationCode(input.Email, input.Name, plain, u.registerCodeTTL); err != nil {
			return domainerrors.ErrMailDispatch
		}

		issued = &entities.IssuedCode{CodeRef: code.ID, ExpiresAt: code.ExpiresAt}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return issued, nil
}

// VerifyRegistration confirms a registration code and creates the account.
// Wrong and expired codes are charged against the same attempt budget.
func (u *AuthUsecase) VerifyRegistration(ctx context.Context, input *entities.VerifyRegistrationInput) (*entities.AuthResponse, error) {
	allowed, err := u.limiter.Allow(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domainerrors.ErrTooManyAttempts
	}

	codeRef, err := uuid.Parse(input.CodeRef)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}

	code, err := u.codeRepo.GetByID(ctx, codeRef)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCode
		}
		return nil, err
	}
	if code.Target != input.Email || code.Purpose != entities.PurposeRegister {
		return nil, domainerrors.ErrInvalidCode
	}
	if code.Consumed() {
		return nil, domainerrors.ErrCodeConsumed
	}
	if code.Expired(time.Now()) {
		return nil, domainerrors.ErrCodeExpired
	}
	if !crypto.VerifyCode(input.Code, code.CodeHash) {
		return nil, domainerrors.ErrInvalidCode
	}

	user := &entities.User{
		Email:        code.Target,
		Name:         code.Name.String,
		PasswordHash: code.SecretHash.String,
		Role:         entities.UserRoleUser,
	}
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.codeRepo.MarkConsumed(txCtx, code.ID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.ErrCodeConsumed
			}
			return err
		}
		return u.userRepo.Create(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	if err := u.limiter.Reset(ctx, input.Email); err != nil {
		return nil, err
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}, nil
}

// Login authenticates a user and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}, nil
}

// GetUserByID returns the user for an authenticated session
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
