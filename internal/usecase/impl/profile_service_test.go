package impl

import (
	"context"
	"testing"

	"habitrack/internal/domain/entity"
	domainerrors "habitrack/internal/domain/errors"
	"habitrack/internal/domain/repository"
	mockRepo "habitrack/internal/mocks/repository"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	authRepo  *mockRepo.MockAuthRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	f := profileServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		authRepo:  mockRepo.NewMockAuthRepository(t),
	}
	f.service = NewProfileService(ProfileServiceParams{
		TxManager: f.txManager,
		UserRepo:  f.userRepo,
		Logger:    newDiscardLogger(),
	})

	return f
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	expectedUser := &entity.User{ID: uuid.New(), Email: "test@example.com", Name: "Test User"}

	fx.userRepo.EXPECT().FindByID(ctx, expectedUser.ID).Return(expectedUser, nil)

	user, err := fx.service.GetProfile(ctx, expectedUser.ID)

	require.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateFCMToken(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		UpdateFCMToken(ctx, userID, mock.MatchedBy(func(token *string) bool {
			return token != nil && *token == "device-token"
		})).
		Return(nil)

	require.NoError(t, fx.service.UpdateFCMToken(ctx, userID, "  device-token \n"))
}

func TestProfileService_UpdateFCMToken_Blank(t *testing.T) {
	fx := createTestProfileService(t)

	err := fx.service.UpdateFCMToken(context.Background(), uuid.New(), "   ")

	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestProfileService_ClearFCMToken(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().UpdateFCMToken(ctx, userID, (*string)(nil)).Return(nil)

	require.NoError(t, fx.service.ClearFCMToken(ctx, userID))
}

func TestProfileService_UpdateProfile_RenameAndChangeEmail(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "old@example.com", Name: "Old", IsVerified: true}
	auth := &entity.Authentication{ID: uuid.New(), UserID: user.ID, ProviderUserID: "old@example.com"}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "old@example.com").Return(auth, nil)
	fx.authRepo.EXPECT().
		UpdateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.ID == auth.ID && a.ProviderUserID == "new@example.com"
		})).
		Return(nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == "New" && u.Email == "new@example.com" && u.IsVerified
		})).
		Return(nil)

	name, email := " New ", "new@example.com"
	updated, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Name: &name, Email: &email})

	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestProfileService_UpdateProfile_NameOnlyKeepsCredential(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "same@example.com", Name: "Old"}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	email, name := "same@example.com", "Renamed"
	updated, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Name: &name, Email: &email})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestProfileService_UpdateProfile_EmailTaken(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "old@example.com"}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "old@example.com").
		Return(&entity.Authentication{ID: uuid.New(), UserID: user.ID}, nil)
	fx.authRepo.EXPECT().UpdateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("authentication method already exists"))

	email := "taken@example.com"
	_, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Email: &email})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestProfileService_UpdateProfile_StorageFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "old@example.com"}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to update user"))

	name := "Renamed"
	_, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Name: &name})

	assert.ErrorIs(t, err, domainerrors.ErrUserUpdateFailed)
}

func TestProfileService_UpdateProfile_RejectsEmptyPatch(t *testing.T) {
	fx := createTestProfileService(t)
	blank := "  "

	for _, input := range []*usecase.UpdateProfileInput{{}, {Name: &blank}} {
		_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), input)

		appErr, ok := err.(domainerrors.AppError)
		require.True(t, ok)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	}
}
