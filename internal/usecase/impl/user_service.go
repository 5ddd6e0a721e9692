// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"habitrack/config"
	deliverycontext "habitrack/internal/delivery/context"
	"habitrack/internal/domain/entity"
	domainerrors "habitrack/internal/domain/errors"
	"habitrack/internal/domain/repository"
	"habitrack/internal/domain/service"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultVerificationCodeTTL = 15 * time.Minute
	verificationCodeSpace      = 1_000_000
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	sender           service.VerificationSender
	codeTTL          time.Duration
	logger           *slog.Logger
	now              func() time.Time
	newCode          func() (string, error)
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Config           *config.Config
	TxManager        repository.TransactionManager
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Sender           service.VerificationSender
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	codeTTL := defaultVerificationCodeTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.VerificationCodeTTL > 0 {
		codeTTL = params.Config.Auth.VerificationCodeTTL
	}

	return &userService{
		txManager:        params.TxManager,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		sender:           params.Sender,
		codeTTL:          codeTTL,
		logger:           params.Logger,
		now:              time.Now,
		newCode:          newVerificationCode,
	}
}

// newVerificationCode returns a uniformly random six digit code.
func newVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(verificationCodeSpace))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate verification code")
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates the unverified user and its email credential in one
// transaction, then sends the verification code.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	// Hash outside the transaction; bcrypt is CPU-bound.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	code, err := srv.newCode()
	if err != nil {
		return nil, err
	}
	expiresAt := srv.now().Add(srv.codeTTL)

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		existing, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			registeredUser, err = srv.reissuePending(ctx, repoFactory, existing, input.Name, hashedPassword, code, expiresAt)

			return err
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		newUser := &entity.User{
			Name:  input.Name,
			Email: input.Email,
		}
		newUser.IssueVerificationCode(code, expiresAt)
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}
		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	if err := srv.sender.SendVerificationCode(ctx, registeredUser.Email, code); err != nil {
		srv.log(ctx).Error("Failed to send verification code", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to send verification code")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// reissuePending lets an unverified account be registered again: the name,
// password and code are replaced and earlier sessions are revoked.
func (srv *userService) reissuePending(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	auth *entity.Authentication,
	name, hashedPassword, code string,
	expiresAt time.Time,
) (*entity.User, error) {
	user, err := repoFactory.UserRepo().FindByID(ctx, auth.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}
	if user.IsVerified {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
	}

	user.Name = name
	user.IssueVerificationCode(code, expiresAt)
	if err := repoFactory.UserRepo().Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to refresh pending user")
	}

	auth.PasswordHash = hashedPassword
	if err := repoFactory.AuthRepo().UpdateAuthentication(ctx, auth); err != nil {
		return nil, errors.Wrap(err, "failed to replace pending password")
	}

	if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, user.ID); err != nil {
		return nil, errors.Wrap(err, "failed to revoke pending sessions")
	}
	srv.log(ctx).Info("Verification code reissued", slog.Any("userID", user.ID))

	return user, nil
}

// VerifyEmail confirms the code sent at registration. Unknown addresses,
// verified users, wrong codes and expired codes all fail the same way.
func (srv *userService) VerifyEmail(ctx context.Context, input *usecase.VerifyEmailInput) (*usecase.VerifyEmailOutput, error) {
	srv.log(ctx).Info("Verifying email", slog.String("email", input.Email))

	var verified *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrVerificationCodeInvalid, "unknown email")
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		if !user.Verify(input.Code, srv.now()) {
			return errors.Wrap(domainerrors.ErrVerificationCodeInvalid, "code rejected")
		}
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to mark user verified")
		}
		verified = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Email verification failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify email")
	}

	srv.log(ctx).Info("Email verified", slog.Any("userID", verified.ID))

	return &usecase.VerifyEmailOutput{User: verified}, nil
}

// Login verifies the email credential and opens a new session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	var (
		authRecord   *entity.Authentication
		loggedInUser *entity.User
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		authRecord, err = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(err, "failed to find authentication")
		}

		loggedInUser, err = repoFactory.UserRepo().FindByID(ctx, authRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login credentials")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !loggedInUser.IsVerified {
		srv.log(ctx).Warn("Login before email verification", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrUserNotVerified, "login failed")
	}

	accessToken, refreshToken, err := srv.issueSession(ctx, srv.refreshTokenRepo, loggedInUser.ID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         loggedInUser,
	}, nil
}

// RefreshToken rotates the session: the presented refresh token is revoked and a new pair issued.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	var output usecase.RefreshTokenOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()
		tokenHash := srv.tokenService.HashToken(input.RefreshToken)

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.UserID != claims.UserID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject mismatch")
		}

		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}

		output.AccessToken, output.RefreshToken, err = srv.issueSession(ctx, refreshRepo, stored.UserID)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &output, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// An expired token still identifies a stored session, so deletion proceeds.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session not found")
		}
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// issueSession generates a token pair and stores the refresh token hash through repo.
func (srv *userService) issueSession(ctx context.Context, repo repository.RefreshTokenRepository, userID uuid.UUID) (string, string, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(userID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := repo.CreateRefreshToken(ctx, session); err != nil {
		return "", "", errors.Wrap(err, "failed to store refresh token")
	}

	return accessToken, refreshToken, nil
}
