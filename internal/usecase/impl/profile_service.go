package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "habitrack/internal/delivery/context"
	"habitrack/internal/domain/entity"
	domainerrors "habitrack/internal/domain/errors"
	"habitrack/internal/domain/repository"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// GetProfile retrieves the user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Getting user profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get profile")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile renames the user and, when the email changes, moves the email
// credential to the new address in the same transaction. Verification state is kept.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if input.Name == nil && input.Email == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name or email is required")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be blank")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "update profile")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Name != nil {
			user.Name = strings.TrimSpace(*input.Name)
		}
		if input.Email != nil && *input.Email != user.Email {
			if err := srv.moveEmailCredential(ctx, repoFactory.AuthRepo(), user.Email, *input.Email); err != nil {
				return err
			}
			user.Email = *input.Email
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
				return errors.WithStack(err)
			}

			return errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
		}
		updated = user

		return nil
	})
	if err != nil {
		logger.Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	logger.Info("Profile updated", slog.Any("userID", userID))

	return updated, nil
}

func (srv *profileService) moveEmailCredential(ctx context.Context, authRepo repository.AuthRepository, from, to string) error {
	auth, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, from)
	if err != nil {
		return errors.Wrap(err, "failed to find email credential")
	}

	auth.ProviderUserID = to
	if err := authRepo.UpdateAuthentication(ctx, auth); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return errors.WithStack(err)
		}

		return errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}

	return nil
}

// UpdateFCMToken stores the trimmed device token. A blank token is rejected.
func (srv *profileService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm_token must not be blank")
	}

	return srv.setFCMToken(ctx, userID, &token)
}

// ClearFCMToken removes the device token.
func (srv *profileService) ClearFCMToken(ctx context.Context, userID uuid.UUID) error {
	return srv.setFCMToken(ctx, userID, nil)
}

func (srv *profileService) setFCMToken(ctx context.Context, userID uuid.UUID, token *string) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Updating push token",
		slog.Any("userID", userID),
		slog.Bool("cleared", token == nil),
	)

	if err := srv.userRepo.UpdateFCMToken(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "update push token")
		}

		return errors.Wrap(err, "failed to update push token")
	}

	return nil
}
