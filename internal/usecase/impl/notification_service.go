package impl

import (
	"context"
	"log/slog"

	deliverycontext "habitrack/internal/delivery/context"
	"habitrack/internal/domain/entity"
	domainerrors "habitrack/internal/domain/errors"
	"habitrack/internal/domain/repository"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	habitRepo        repository.HabitRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	HabitRepo        repository.HabitRepository
	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		habitRepo:        params.HabitRepo,
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

func (s *notificationService) CreateNotification(ctx context.Context, userID, habitID uuid.UUID, input *usecase.CreateNotificationInput) (*entity.Notification, error) {
	if _, err := loadOwnedHabit(ctx, s.habitRepo, userID, habitID); err != nil {
		return nil, err
	}

	notification := &entity.Notification{
		UserID:  userID,
		HabitID: habitID,
		Time:    input.Time,
		Enabled: input.Enabled,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			return nil, errors.Wrap(domainerrors.ErrHabitNotFound, "create notification")
		}

		return nil, errors.Wrap(err, "failed to create notification")
	}
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Reminder configured",
		slog.Any("habitID", habitID),
		slog.Any("notificationID", notification.ID),
		slog.String("time", notification.Time.String()),
		slog.Bool("enabled", notification.Enabled),
	)

	return notification, nil
}

func (s *notificationService) ListNotifications(ctx context.Context, userID, habitID uuid.UUID) ([]*entity.Notification, error) {
	if _, err := loadOwnedHabit(ctx, s.habitRepo, userID, habitID); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.FindByHabit(ctx, habitID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (s *notificationService) UpdateNotification(ctx context.Context, userID, notificationID uuid.UUID, input *usecase.UpdateNotificationInput) (*entity.Notification, error) {
	notification, err := s.loadOwned(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}

	if input.Time != nil {
		notification.Time = *input.Time
	}
	if input.Enabled != nil {
		notification.Enabled = *input.Enabled
	}

	if err := s.notificationRepo.Update(ctx, notification); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotificationNotFound, notificationID.String())
		}

		return nil, errors.Wrap(err, "failed to update notification")
	}

	return notification, nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepo.Delete(ctx, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return errors.Wrap(domainerrors.ErrNotificationNotFound, notificationID.String())
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

func (s *notificationService) loadOwned(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotificationNotFound, notificationID.String())
		}

		return nil, errors.Wrap(err, "failed to find notification")
	}
	if notification.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "notification belongs to another user")
	}

	return notification, nil
}
