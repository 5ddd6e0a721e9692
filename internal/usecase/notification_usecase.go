package usecase

import (
	"context"

	"habitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNotificationInput configures a daily reminder for a habit.
type CreateNotificationInput struct {
	Time    entity.TimeOfDay
	Enabled bool
}

// UpdateNotificationInput holds the optional fields of a reminder update.
type UpdateNotificationInput struct {
	Time    *entity.TimeOfDay
	Enabled *bool
}

// NotificationUsecase manages the reminder configuration of a user's habits.
type NotificationUsecase interface {
	CreateNotification(ctx context.Context, userID, habitID uuid.UUID, input *CreateNotificationInput) (*entity.Notification, error)
	ListNotifications(ctx context.Context, userID, habitID uuid.UUID) ([]*entity.Notification, error)
	UpdateNotification(ctx context.Context, userID, notificationID uuid.UUID, input *UpdateNotificationInput) (*entity.Notification, error)
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error
}
