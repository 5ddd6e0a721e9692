package impl

import (
	"context"
	"testing"
	"time"

	"habitrack/config"
	"habitrack/internal/domain/entity"
	domainerrors "habitrack/internal/domain/errors"
	"habitrack/internal/domain/repository"
	"habitrack/internal/domain/service"
	mockRepo "habitrack/internal/mocks/repository"
	mockSvc "habitrack/internal/mocks/service"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	sender           *mockSvc.MockVerificationSender
}

var testNow = time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

const testCode = "042917"

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		sender:           mockSvc.NewMockVerificationSender(t),
	}
	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{VerificationCodeTTL: 15 * time.Minute}

	f.service = NewUserService(UserServiceParams{
		Config:           cfg,
		TxManager:        f.txManager,
		RefreshTokenRepo: f.refreshTokenRepo,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		Sender:           f.sender,
		Logger:           newDiscardLogger(),
	})
	srv := f.service.(*userService)
	srv.now = func() time.Time { return testNow }
	srv.newCode = func() (string, error) { return testCode, nil }

	return f
}

func TestNewVerificationCode(t *testing.T) {
	for range 20 {
		code, err := newVerificationCode()
		require.NoError(t, err)
		assert.Regexp(t, `^[0-9]{6}$`, code)
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Test User", Email: "test@example.com", Password: "Str0ng!Pass"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return !user.IsVerified &&
				user.VerificationCode != nil && *user.VerificationCode == testCode &&
				user.VerificationCodeExpiresAt != nil && user.VerificationCodeExpiresAt.Equal(testNow.Add(15*time.Minute))
		})).
		Run(func(_ context.Context, user *entity.User) { user.ID = uuid.New() }).
		Return(nil)
	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.PasswordHash == "hashed_password" && auth.ProviderUserID == input.Email
		})).
		Return(nil)
	fx.sender.EXPECT().SendVerificationCode(ctx, input.Email, testCode).Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.False(t, output.User.IsVerified)
}

func TestUserService_RegisterUser_RefreshesUnverifiedAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Second Try", Email: "pending@example.com", Password: "N3w!Passw0rd"}
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

	staleCode := "111111"
	staleExpiry := testNow.Add(-time.Hour)
	pending := &entity.User{
		ID:                        uuid.New(),
		Email:                     input.Email,
		Name:                      "First Try",
		VerificationCode:          &staleCode,
		VerificationCodeExpiresAt: &staleExpiry,
	}
	auth := &entity.Authentication{ID: uuid.New(), UserID: pending.ID, ProviderUserID: input.Email, PasswordHash: "old_hash"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("new_hash", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).Return(auth, nil)
	fx.userRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Name == "Second Try" && *user.VerificationCode == testCode &&
				user.VerificationCodeExpiresAt.Equal(testNow.Add(15*time.Minute))
		})).
		Return(nil)
	fx.authRepo.EXPECT().
		UpdateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.ID == auth.ID && a.PasswordHash == "new_hash"
		})).
		Return(nil)
	txRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, pending.ID).Return(nil)
	fx.sender.EXPECT().SendVerificationCode(ctx, input.Email, testCode).Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, pending.ID, output.User.ID)
	assert.False(t, output.User.IsVerified)
}

func TestUserService_RegisterUser_SendFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Test User", Email: "test@example.com", Password: "Str0ng!Pass"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).Return(nil, repository.ErrAuthNotFound)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.authRepo.EXPECT().CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).Return(nil)
	fx.sender.EXPECT().SendVerificationCode(ctx, input.Email, testCode).Return(errors.New("mailbox unavailable"))

	_, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mailbox unavailable")
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Test User", Email: "taken@example.com", Password: "Str0ng!Pass"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	userID := uuid.New()
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: userID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: input.Email, IsVerified: true}, nil)

	_, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)
	input := &usecase.RegisterUserInput{Email: "weak@example.com", Password: "short"}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(domainerrors.ErrPasswordStrength.WithDetails("too short"))

	_, err := fx.service.RegisterUser(context.Background(), input)

	require.Error(t, err)
	appErr, ok := errors.Cause(err).(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrPasswordStrength.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", IsVerified: true}
	input := &usecase.LoginInput{Email: user.Email, Password: "Str0ng!Pass"}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hash"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, "hash").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == user.ID && token.TokenHash == "refresh-hash" && token.ExpiresAt.Equal(testNow.Add(time.Hour))
		})).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_Unverified(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "pending@example.com"}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hash"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("Str0ng!Pass", "hash").Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Str0ng!Pass"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotVerified)
}

func TestUserService_VerifyEmail_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "pending@example.com"}
	user.IssueVerificationCode(testCode, testNow.Add(time.Minute))

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.IsVerified && u.VerificationCode == nil && u.VerificationCodeExpiresAt == nil
		})).
		Return(nil)

	output, err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{Email: user.Email, Code: testCode})

	require.NoError(t, err)
	assert.True(t, output.User.IsVerified)
}

func TestUserService_VerifyEmail_Rejected(t *testing.T) {
	pendingUser := func(expiresAt time.Time) *entity.User {
		user := &entity.User{ID: uuid.New(), Email: "pending@example.com"}
		user.IssueVerificationCode(testCode, expiresAt)

		return user
	}

	tests := []struct {
		name    string
		user    *entity.User
		findErr error
		code    string
	}{
		{name: "unknown email", findErr: repository.ErrUserNotFound, code: testCode},
		{name: "wrong code", user: pendingUser(testNow.Add(time.Minute)), code: "000000"},
		{name: "expired code", user: pendingUser(testNow.Add(-time.Second)), code: testCode},
		{name: "already verified", user: &entity.User{ID: uuid.New(), Email: "pending@example.com", IsVerified: true}, code: testCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()

			expectTx(fx.txManager, fx.factory)
			fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
			fx.userRepo.EXPECT().FindByEmail(ctx, "pending@example.com").Return(tt.user, tt.findErr)

			_, err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{Email: "pending@example.com", Code: tt.code})

			assert.ErrorIs(t, err, domainerrors.ErrVerificationCodeInvalid)
		})
	}
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com").
		Return(nil, repository.ErrAuthNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "test@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hash"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "test@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshToken_RotatesSession(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	txRefreshRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "old-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "old-hash"}, nil)
	txRefreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old-hash").Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	txRefreshRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.TokenHash == "new-hash"
		})).
		Return(nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_RefreshToken_RejectsAccessToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateToken("access").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeAccess}, nil)

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "access"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_RefreshToken_RevokedSession(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

	fx.tokenService.EXPECT().
		ValidateToken("revoked").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)
	fx.tokenService.EXPECT().HashToken("revoked").Return("revoked-hash")
	txRefreshRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "revoked-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "revoked"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout(t *testing.T) {
	t.Run("deletes the session", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("refresh").Return(&service.Claims{}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "hash").Return(nil)

		require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"}))
	})

	t.Run("unknown session", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("gone").Return(nil, errors.New("token is expired"))
		fx.tokenService.EXPECT().HashToken("gone").Return("hash")
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "hash").Return(repository.ErrRefreshTokenNotFound)

		err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "gone"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}
