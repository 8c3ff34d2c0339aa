package usecases_test

import (
	"context"
	"testing"
	"time"

	"bedrijvengids.backend/internal/domain/entities"
	domainerrors "bedrijvengids.backend/internal/domain/errors"
	"bedrijvengids.backend/internal/usecases"
	"bedrijvengids.backend/pkg/crypto"
	"bedrijvengids.backend/pkg/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
)

func newAuthFixture() (*usecases.AuthUsecase, *MockUserRepository, *MockVerificationCodeRepository, *MockUnitOfWork, *MockMailSender, *MockAttemptLimiter) {
	userRepo := new(MockUserRepository)
	codeRepo := new(MockVerificationCodeRepository)
	uow := new(MockUnitOfWork)
	sender := new(MockMailSender)
	limiter := new(MockAttemptLimiter)
	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, 7*24*time.Hour)

	uc := usecases.NewAuthUsecase(userRepo, codeRepo, uow, sender, jwtService, limiter, 15*time.Minute)
	return uc, userRepo, codeRepo, uow, sender, limiter
}

func TestAuthUsecase_Register_IssuesCode(t *testing.T) {
	uc, userRepo, codeRepo, uow, sender, _ := newAuthFixture()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "anna@voorbeeld.nl").Return(nil, domainerrors.ErrNotFound)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	codeRepo.On("InvalidateActive", mock.Anything, "anna@voorbeeld.nl", entities.PurposeRegister).Return(nil)

	codeID := uuid.New()
	codeRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.VerificationCode")).
		Run(func(args mock.Arguments) {
			code := args.Get(1).(*entities.VerificationCode)
			code.ID = codeID
			// pending registration context rides on the code row
			assert.Equal(t, "Anna", code.Name.String)
			assert.NotEmpty(t, code.SecretHash.String)
			assert.NotEqual(t, "wachtwoord123", code.SecretHash.String)
			assert.Len(t, code.CodeHash, 64)
		}).Return(nil)

	var mailedCode string
	sender.On("SendRegistrationCode", "anna@voorbeeld.nl", "Anna", mock.AnythingOfType("string"), 15*time.Minute).
		Run(func(args mock.Arguments) { mailedCode = args.String(2) }).Return(nil)

	issued, err := uc.Register(ctx, &entities.RegisterInput{
		Email:    "anna@voorbeeld.nl",
		Name:     "Anna",
		Password: "wachtwoord123",
	})
	require.NoError(t, err)
	assert.Equal(t, codeID, issued.CodeRef)
	assert.Len(t, mailedCode, crypto.CodeLength)

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Register_EmailTaken(t *testing.T) {
	uc, userRepo, _, _, _, _ := newAuthFixture()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "anna@voorbeeld.nl").Return(&entities.User{ID: uuid.New()}, nil)

	_, err := uc.Register(ctx, &entities.RegisterInput{Email: "anna@voorbeeld.nl", Name: "Anna", Password: "wachtwoord123"})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthUsecase_Register_MailFailureRollsBack(t *testing.T) {
	uc, userRepo, codeRepo, uow, sender, _ := newAuthFixture()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "anna@voorbeeld.nl").Return(nil, domainerrors.ErrNotFound)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	codeRepo.On("InvalidateActive", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	codeRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	sender.On("SendRegistrationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	_, err := uc.Register(ctx, &entities.RegisterInput{Email: "anna@voorbeeld.nl", Name: "Anna", Password: "wachtwoord123"})
	assert.ErrorIs(t, err, domainerrors.ErrMailDispatch)
}

func registrationCode(codeRef uuid.UUID, email, plain string) *entities.VerificationCode {
	return &entities.VerificationCode{
		ID:         codeRef,
		Target:     email,
		Purpose:    entities.PurposeRegister,
		CodeHash:   crypto.HashCode(plain),
		Name:       null.StringFrom("Anna"),
		SecretHash: null.StringFrom("stored-bcrypt-hash"),
		ExpiresAt:  time.Now().Add(10 * time.Minute),
	}
}

func TestAuthUsecase_VerifyRegistration_Success(t *testing.T) {
	uc, userRepo, codeRepo, uow, _, limiter := newAuthFixture()
	ctx := context.Background()

	codeRef := uuid.New()
	code := registrationCode(codeRef, "anna@voorbeeld.nl", "123456")

	limiter.On("Allow", ctx, "anna@voorbeeld.nl").Return(true, nil)
	codeRepo.On("GetByID", ctx, codeRef).Return(code, nil)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	codeRepo.On("MarkConsumed", mock.Anything, codeRef).Return(nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entities.User)
			user.ID = uuid.New()
			assert.Equal(t, "anna@voorbeeld.nl", user.Email)
			assert.Equal(t, "Anna", user.Name)
			assert.Equal(t, "stored-bcrypt-hash", user.PasswordHash)
		}).Return(nil)
	limiter.On("Reset", ctx, "anna@voorbeeld.nl").Return(nil)

	resp, err := uc.VerifyRegistration(ctx, &entities.VerifyRegistrationInput{
		Email:   "anna@voorbeeld.nl",
		Code:    "123456",
		CodeRef: codeRef.String(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, entities.UserRoleUser, resp.User.Role)
}

func TestAuthUsecase_VerifyRegistration_WrongCode(t *testing.T) {
	uc, _, codeRepo, _, _, limiter := newAuthFixture()
	ctx := context.Background()

	codeRef := uuid.New()
	limiter.On("Allow", ctx, "anna@voorbeeld.nl").Return(true, nil)
	codeRepo.On("GetByID", ctx, codeRef).Return(registrationCode(codeRef, "anna@voorbeeld.nl", "123456"), nil)

	_, err := uc.VerifyRegistration(ctx, &entities.VerifyRegistrationInput{
		Email:   "anna@voorbeeld.nl",
		Code:    "654321",
		CodeRef: codeRef.String(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCode)
	limiter.AssertNotCalled(t, "Reset", mock.Anything, mock.Anything)
}

func TestAuthUsecase_VerifyRegistration_Expired(t *testing.T) {
	uc, _, codeRepo, _, _, limiter := newAuthFixture()
	ctx := context.Background()

	codeRef := uuid.New()
	code := registrationCode(codeRef, "anna@voorbeeld.nl", "123456")
	code.ExpiresAt = time.Now().Add(-time.Minute)

	limiter.On("Allow", ctx, "anna@voorbeeld.nl").Return(true, nil)
	codeRepo.On("GetByID", ctx, codeRef).Return(code, nil)

	_, err := uc.VerifyRegistration(ctx, &entities.VerifyRegistrationInput{
		Email:   "anna@voorbeeld.nl",
		Code:    "123456",
		CodeRef: codeRef.String(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrCodeExpired)
}

func TestAuthUsecase_VerifyRegistration_Consumed(t *testing.T) {
	uc, _, codeRepo, _, _, limiter := newAuthFixture()
	ctx := context.Background()

	codeRef := uuid.New()
	code := registrationCode(codeRef, "anna@voorbeeld.nl", "123456")
	code.ConsumedAt = null.TimeFrom(time.Now())

	limiter.On("Allow", ctx, "anna@voorbeeld.nl").Return(true, nil)
	codeRepo.On("GetByID", ctx, codeRef).Return(code, nil)

	_, err := uc.VerifyRegistration(ctx, &entities.VerifyRegistrationInput{
		Email:   "anna@voorbeeld.nl",
		Code:    "123456",
		CodeRef: codeRef.String(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrCodeConsumed)
}

func TestAuthUsecase_VerifyRegistration_RateLimited(t *testing.T) {
	uc, _, codeRepo, _, _, limiter := newAuthFixture()
	ctx := context.Background()

	limiter.On("Allow", ctx, "anna@voorbeeld.nl").Return(false, nil)

	_, err := uc.VerifyRegistration(ctx, &entities.VerifyRegistrationInput{
		Email:   "anna@voorbeeld.nl",
		Code:    "123456",
		CodeRef: uuid.New().String(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrTooManyAttempts)
	codeRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAuthUsecase_VerifyRegistration_TargetMismatch(t *testing.T) {
	uc, _, codeRepo, _, _, limiter := newAuthFixture()
	ctx := context.Background()

	codeRef := uuid.New()
	limiter.On("Allow", ctx, "evil@voorbeeld.nl").Return(true, nil)
	codeRepo.On("GetByID", ctx, codeRef).Return(registrationCode(codeRef, "anna@voorbeeld.nl", "123456"), nil)

	_, err := uc.VerifyRegistration(ctx, &entities.VerifyRegistrationInput{
		Email:   "evil@voorbeeld.nl",
		Code:    "123456",
		CodeRef: codeRef.String(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCode)
}

func TestAuthUsecase_Login(t *testing.T) {
	uc, userRepo, _, _, _, _ := newAuthFixture()
	ctx := context.Background()

	hash, err := crypto.HashPassword("wachtwoord123")
	require.NoError(t, err)
	user := &entities.User{
		ID:           uuid.New(),
		Email:        "anna@voorbeeld.nl",
		Name:         "Anna",
		PasswordHash: hash,
		Role:         entities.UserRoleUser,
	}
	userRepo.On("GetByEmail", ctx, "anna@voorbeeld.nl").Return(user, nil)

	resp, err := uc.Login(ctx, &entities.LoginInput{Email: "anna@voorbeeld.nl", Password: "wachtwoord123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = uc.Login(ctx, &entities.LoginInput{Email: "anna@voorbeeld.nl", Password: "verkeerd"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	uc, userRepo, _, _, _, _ := newAuthFixture()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "nope@voorbeeld.nl").Return(nil, domainerrors.ErrNotFound)

	_, err := uc.Login(ctx, &entities.LoginInput{Email: "nope@voorbeeld.nl", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_RefreshToken(t *testing.T) {
	uc, userRepo, _, _, _, _ := newAuthFixture()
	ctx := context.Background()

	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, 7*24*time.Hour)
	user := &entities.User{ID: uuid.New(), Email: "anna@voorbeeld.nl", Role: entities.UserRoleUser}
	pair, err := jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)

	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)

	resp, err := uc.RefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = uc.RefreshToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
