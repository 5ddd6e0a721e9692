package postgres

import (
	"context"
	"testing"
	"time"

	"habitrack/internal/domain/entity"
	domainerrors "habitrack/internal/domain/errors"
	"habitrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, repo repository.UserRepository, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Name: "Tester"}
	require.NoError(t, repo.Create(context.Background(), user))
	require.NotEqual(t, uuid.Nil, user.ID)

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, repo, "alice@example.com")

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
	assert.Nil(t, byID.FCMToken)

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, repo, "dup@example.com")

	err := repo.Create(context.Background(), &entity.User{Email: "dup@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserRepository_UpdateFCMToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, repo, "token@example.com")

	token := "device-token"
	require.NoError(t, repo.UpdateFCMToken(ctx, user.ID, &token))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.FCMToken)
	assert.Equal(t, token, *found.FCMToken)

	require.NoError(t, repo.UpdateFCMToken(ctx, user.ID, nil))
	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, found.FCMToken)

	err = repo.UpdateFCMToken(ctx, uuid.New(), &token)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestAuthRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	user := createTestUser(t, users, "auth@example.com")
	auth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: user.Email,
		PasswordHash:   "hash",
	}
	require.NoError(t, repo.CreateAuthentication(ctx, auth))

	found, err := repo.FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)

	err = repo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: user.Email,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserRepository_UpdateVerificationState(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, repo, "pending@example.com")
	expiresAt := time.Date(2025, 6, 1, 8, 15, 0, 0, time.UTC)
	user.IssueVerificationCode("123456", expiresAt)
	user.Name = "Pending"
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByEmail(ctx, "pending@example.com")
	require.NoError(t, err)
	assert.False(t, found.IsVerified)
	assert.Equal(t, "Pending", found.Name)
	require.NotNil(t, found.VerificationCode)
	assert.Equal(t, "123456", *found.VerificationCode)
	require.NotNil(t, found.VerificationCodeExpiresAt)
	assert.True(t, expiresAt.Equal(*found.VerificationCodeExpiresAt))

	require.True(t, found.Verify("123456", expiresAt.Add(-time.Minute)))
	require.NoError(t, repo.Update(ctx, found))

	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, found.IsVerified)
	assert.Nil(t, found.VerificationCode)
	assert.Nil(t, found.VerificationCodeExpiresAt)

	other := createTestUser(t, repo, "taken@example.com")
	other.Email = "pending@example.com"
	assert.ErrorIs(t, repo.Update(ctx, other), domainerrors.ErrUserAlreadyExists)

	assert.ErrorIs(t, repo.Update(ctx, &entity.User{ID: uuid.New()}), repository.ErrUserNotFound)
}

func TestAuthRepository_UpdateAuthentication(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	first := createTestUser(t, users, "first@example.com")
	second := createTestUser(t, users, "second@example.com")
	auth := &entity.Authentication{UserID: first.ID, Provider: entity.ProviderTypeEmail, ProviderUserID: first.Email, PasswordHash: "old"}
	require.NoError(t, repo.CreateAuthentication(ctx, auth))
	require.NoError(t, repo.CreateAuthentication(ctx, &entity.Authentication{
		UserID: second.ID, Provider: entity.ProviderTypeEmail, ProviderUserID: second.Email, PasswordHash: "hash",
	}))

	auth.ProviderUserID = "renamed@example.com"
	auth.PasswordHash = "new"
	require.NoError(t, repo.UpdateAuthentication(ctx, auth))

	found, err := repo.FindAuthentication(ctx, entity.ProviderTypeEmail, "renamed@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.UserID)
	assert.Equal(t, "new", found.PasswordHash)

	auth.ProviderUserID = second.Email
	assert.ErrorIs(t, repo.UpdateAuthentication(ctx, auth), domainerrors.ErrUserAlreadyExists)

	assert.ErrorIs(t, repo.UpdateAuthentication(ctx, &entity.Authentication{ID: uuid.New()}), repository.ErrAuthNotFound)
}

func TestRefreshTokenRepository(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	user := createTestUser(t, users, "session@example.com")

	require.NoError(t, repo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: "live",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, repo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: "stale",
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	found, err := repo.FindRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)

	_, err = repo.FindRefreshTokenByHash(ctx, "stale")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenExpired)

	_, err = repo.FindRefreshTokenByHash(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

	require.NoError(t, repo.DeleteRefreshTokenByHash(ctx, "live"))
	assert.ErrorIs(t, repo.DeleteRefreshTokenByHash(ctx, "live"), repository.ErrRefreshTokenNotFound)

	require.NoError(t, repo.DeleteRefreshTokensByUserID(ctx, user.ID))
	_, err = repo.FindRefreshTokenByHash(ctx, "stale")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}
